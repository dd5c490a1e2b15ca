/* Copyright 2020 Freerware
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package restmachine

import (
	"net/http"

	"github.com/freerware/restmachine/clock"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

// defaultKnownMethods is substituted for the known_methods decision node
// when a Resource does not supply KnownMethods.
var defaultKnownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Options represents the process-wide configuration for the decision
// engine.
type Options struct {
	KnownMethods []string
	Clock        clock.Clock
	Logger       *zap.Logger
	Scope        tally.Scope
}

// Option represents a configurable option for the decision engine.
type Option func(*Options)

// Options that can be used to configure the decision engine.
var (
	// KnownMethods overrides the default known_methods list consulted
	// when a Resource does not supply its own.
	KnownMethods = func(methods ...string) Option {
		return func(o *Options) {
			o.KnownMethods = methods
		}
	}

	// Clock injects the "current time" source used to render the Date
	// response header. Conditional-request date comparisons do not
	// consult it.
	Clock = func(c clock.Clock) Option {
		return func(o *Options) {
			o.Clock = c
		}
	}

	// Logger specifies the logger for the decision engine.
	Logger = func(l *zap.Logger) Option {
		return func(o *Options) {
			o.Logger = l
		}
	}

	// Scope specifies the metric scope for the decision engine.
	Scope = func(s tally.Scope) Option {
		return func(o *Options) {
			o.Scope = s
		}
	}
)
