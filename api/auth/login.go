package auth

import (
	"cafeqr_server/handling"
	"cafeqr_server/lib"
	"cafeqr_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		handling.RespondBadBody(w, arm.logger, err)
		return
	}

	if err := arm.authService.Login(body); err != nil {
		arm.logger.Warn("Login failed", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid username or password"), gecho.Send())
		return
	}

	token, err := arm.authService.GenerateAccessToken()
	if err != nil {
		arm.logger.Error("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(structs.LoginResponse{Token: token}),
		gecho.Send(),
	)
}

// HandleLogout acknowledges a logout. Tokens are stateless, so the client
// simply discards its copy; there is no server-side session to revoke.
func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithMessage("Logged out"),
		gecho.Send(),
	)
}

// HandleVerify reports whether the presented bearer token is still valid.
func (arm *AuthRoutesManager) HandleVerify(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.authService.GetAccessTokenSecret())
	if err != nil {
		gecho.Unauthorized(w,
			gecho.WithData(map[string]any{"valid": false}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"valid": true, "sub": claims.Sub}),
		gecho.Send(),
	)
}
