package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/Dash-Industry-Forum/gcd/pkg/calc"
	"github.com/Dash-Industry-Forum/gcd/pkg/gcd"
	"github.com/Dash-Industry-Forum/gcd/pkg/logging"
)

// GcdSetup is the body of a GCD computation request.
type GcdSetup struct {
	Width     string   `json:"width,omitempty" enum:"8,16,32,64,128,uint,uintptr" doc:"Unsigned integer width (default 64)" example:"32"`
	Algorithm string   `json:"algorithm,omitempty" enum:"default,binary,euclid" doc:"GCD algorithm (default is binary)" example:"euclid"`
	NonZero   bool     `json:"nonzero,omitempty" doc:"Use the non-zero refinement. Zero values are rejected"`
	Verify    bool     `json:"verify,omitempty" doc:"Cross-check with the other algorithm"`
	Values    []string `json:"values" minItems:"1" doc:"Decimal values"`
}

type GcdCreateRequest struct {
	Body GcdSetup
}

type GcdPathRequest struct {
	Width     string `path:"width" enum:"8,16,32,64,128,uint,uintptr" doc:"Unsigned integer width"`
	A         string `path:"a" maxLength:"40" example:"2024" doc:"First value"`
	B         string `path:"b" maxLength:"40" example:"748" doc:"Second value"`
	Algorithm string `query:"algorithm" enum:"default,binary,euclid" default:"default" doc:"GCD algorithm"`
	Verify    bool   `query:"verify" doc:"Cross-check with the other algorithm"`
}

type GcdResponse struct {
	Body *calc.Result
}

type LcmRequest struct {
	A uint64 `path:"a" example:"2024" doc:"First value"`
	B uint64 `path:"b" example:"748" doc:"Second value"`
}

type LcmResponse struct {
	Body struct {
		A   string `json:"a" doc:"First value"`
		B   string `json:"b" doc:"Second value"`
		GCD string `json:"gcd" doc:"Greatest common divisor"`
		LCM string `json:"lcm" doc:"Least common multiple"`
	}
}

// compute runs req and maps calc errors to API errors.
func (s *Server) compute(ctx context.Context, req calc.Request) (*GcdResponse, error) {
	if req.Width == "" {
		req.Width = calc.Width64
	}
	if len(req.Values) > s.Cfg.MaxValues {
		return nil, huma.Error400BadRequest(fmt.Sprintf("too many values: %d > %d", len(req.Values), s.Cfg.MaxValues))
	}
	log := s.logger
	if r, ok := ctx.Value(requestKey{}).(*http.Request); ok {
		log = logging.SubLoggerWithRequestID(log, r)
	}
	res, err := calc.Compute(req)
	switch {
	case err == nil:
	case errors.Is(err, calc.ErrMismatch):
		log.Error("algorithms disagree", "err", err)
		return nil, huma.Error500InternalServerError("internal error", err)
	default:
		log.Debug("bad request", "err", err)
		return nil, huma.Error400BadRequest(err.Error())
	}
	countComputation(string(res.Algorithm), string(res.Width))
	log.Debug("computed", "width", res.Width, "algorithm", res.Algorithm, "gcd", res.GCD)
	return &GcdResponse{Body: res}, nil
}

func createGcdHdlr(s *Server) func(ctx context.Context, in *GcdCreateRequest) (*GcdResponse, error) {
	return func(ctx context.Context, in *GcdCreateRequest) (*GcdResponse, error) {
		return s.compute(ctx, calc.Request{
			Width:     calc.Width(in.Body.Width),
			Algorithm: calc.Algorithm(in.Body.Algorithm),
			NonZero:   in.Body.NonZero,
			Verify:    in.Body.Verify,
			Values:    in.Body.Values,
		})
	}
}

func getGcdHdlr(s *Server) func(ctx context.Context, in *GcdPathRequest) (*GcdResponse, error) {
	return func(ctx context.Context, in *GcdPathRequest) (*GcdResponse, error) {
		return s.compute(ctx, calc.Request{
			Width:     calc.Width(in.Width),
			Algorithm: calc.Algorithm(in.Algorithm),
			Verify:    in.Verify,
			Values:    []string{in.A, in.B},
		})
	}
}

func getLcmHdlr(s *Server) func(ctx context.Context, in *LcmRequest) (*LcmResponse, error) {
	return func(ctx context.Context, in *LcmRequest) (*LcmResponse, error) {
		lcm, ok := gcd.Lcm(in.A, in.B)
		if !ok {
			return nil, huma.Error422UnprocessableEntity(
				fmt.Sprintf("lcm(%d, %d) does not fit in 64 bits", in.A, in.B))
		}
		countComputation(string(calc.AlgDefault), string(calc.Width64))
		resp := &LcmResponse{}
		resp.Body.A = strconv.FormatUint(in.A, 10)
		resp.Body.B = strconv.FormatUint(in.B, 10)
		resp.Body.GCD = strconv.FormatUint(gcd.Of(in.A, in.B), 10)
		resp.Body.LCM = strconv.FormatUint(lcm, 10)
		return resp, nil
	}
}

type requestKey struct{}

// withRequest stores the HTTP request in the context so handlers can log its request ID.
func withRequest(ctx huma.Context, next func(huma.Context)) {
	r, _ := humachi.Unwrap(ctx)
	next(huma.WithValue(ctx, requestKey{}, r))
}

func createRouteAPI(s *Server) func(r chi.Router) {
	return func(r chi.Router) {
		config := huma.DefaultConfig("GCD API", "1.0.0")
		config.Servers = []*huma.Server{
			{URL: "/api"},
		}
		config.Info.Description = `Greatest common divisor of unsigned integers of fixed width
		(8 to 128 bits) with the binary (Stein's) and the Euclidean algorithm.`

		api := humachi.New(r, config)
		api.UseMiddleware(withRequest)

		// Register POST /gcd that computes the GCD of a list of values
		huma.Register(api, huma.Operation{
			OperationID: "compute-gcd",
			Method:      http.MethodPost,
			Path:        "/gcd",
			Summary:     "Compute the GCD of a list of values",
			Tags:        []string{"GCD"},
			Errors:      []int{400, 422, 500},
		}, createGcdHdlr(s))

		// Register GET /gcd/{width}/{a}/{b}
		huma.Register(api, huma.Operation{
			OperationID: "get-gcd",
			Method:      http.MethodGet,
			Path:        "/gcd/{width}/{a}/{b}",
			Summary:     "Compute the GCD of two values",
			Description: "Compute the GCD of a and b at the given width.",
			Tags:        []string{"GCD"},
			Errors:      []int{400, 422, 500},
		}, getGcdHdlr(s))

		// Register GET /lcm/{a}/{b}
		huma.Register(api, huma.Operation{
			OperationID: "get-lcm",
			Method:      http.MethodGet,
			Path:        "/lcm/{a}/{b}",
			Summary:     "Compute the LCM of two 64-bit values",
			Tags:        []string{"LCM"},
			Errors:      []int{422},
		}, getLcmHdlr(s))
	}
}
