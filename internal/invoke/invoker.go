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

// Package invoke wraps every optional handler callback invocation with
// panic recovery, so that a handler defect becomes a 500 rather than
// taking the host process down with it.
package invoke

import "errors"

// ErrHandlerPanic is returned by Invoker.Invoke when the wrapped
// callback panicked instead of returning normally.
var ErrHandlerPanic = errors.New("restmachine: handler callback panicked")

// Invoker recovers panics raised by callback invocations.
type Invoker struct{}

// Invoke runs fn, recovering any panic into ErrHandlerPanic. Use this to
// wrap every call into handler-supplied code, exactly as the reference
// decision engine catches handler exceptions before they can escape the
// request.
func (Invoker) Invoke(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrHandlerPanic
		}
	}()
	return fn()
}
