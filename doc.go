// Package restmachine implements a REST decision engine: a deterministic
// state machine that drives a resource handler through the Cowboy
// cowboy_rest flowchart and produces a compliant HTTP response.
//
// Construction
//
// Build a Resource by filling in whichever callbacks your resource
// needs; every field is optional and the engine substitutes a
// documented default for anything left nil.
//  res := restmachine.Resource{
//      ContentTypesProvided: func(c *restmachine.Context) ([]restmachine.ProvidedType, error) {
//          return []restmachine.ProvidedType{
//              {MediaType: "text/plain", Producer: toText},
//          }, nil
//      },
//  }
//  restmachine.Run(w, r, res, nil)
//
// Handler State
//
// The state argument to Run is an opaque value threaded through every
// callback via Context.State. The engine never inspects it.
//
// Configuration
//
// Run accepts Options to override the known_methods default, inject a
// clock.Clock that supplies the Date response header, or attach a logger
// and metric scope.
//  restmachine.Run(w, r, res, nil,
//      restmachine.Clock(clock.System{}),
//      restmachine.Logger(logger),
//  )
//
// See Also
//
// ➣ https://ninenines.eu/docs/en/cowboy/2.6/guide/rest_flowcharts/
//
// ➣ https://tools.ietf.org/html/rfc7231
package restmachine
