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

// Resource is the handler contract the decision engine consults. Every
// field is optional; a nil field means the engine substitutes the
// documented default for that decision node. Fill it builder-style, one
// field at a time, rather than implementing an interface with forty
// methods.
type Resource struct {
	ServiceAvailable func(*Context) (bool, error)
	KnownMethods     func(*Context) ([]string, error)
	URITooLong       func(*Context) (bool, error)
	AllowedMethods   func(*Context) ([]string, error)
	MalformedRequest func(*Context) (bool, error)
	IsAuthorized     func(*Context) (AuthResult, error)
	Forbidden        func(*Context) (bool, error)

	ValidContentHeaders func(*Context) (bool, error)
	ValidEntityLength   func(*Context) (bool, error)
	Options             func(*Context) error

	ContentTypesProvided func(*Context) ([]ProvidedType, error)
	LanguagesProvided    func(*Context) ([]string, error)
	CharsetsProvided     func(*Context) ([]string, error)
	Variances            func(*Context) ([]string, error)

	ResourceExists func(*Context) (bool, error)
	GenerateETag   func(*Context) (ETag, error)
	LastModified   func(*Context) (DateOrString, error)
	Expires        func(*Context) (DateOrString, error)

	PreviouslyExisted func(*Context) (bool, error)
	MovedPermanently  func(*Context) (LocationResult, error)
	MovedTemporarily  func(*Context) (LocationResult, error)
	MultipleChoices   func(*Context) (bool, error)

	ContentTypesAccepted func(*Context) ([]AcceptedType, error)
	AllowMissingPost     func(*Context) (bool, error)

	DeleteResource  func(*Context) (bool, error)
	DeleteCompleted func(*Context) (bool, error)
	IsConflict      func(*Context) (bool, error)
}
