// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/invoice-hub/backend/internal/application/usecase/auth"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/dto"
	"github.com/invoice-hub/backend/internal/integration/entrypoint/middleware"
)

// AuthCookieSettings controls how session cookies are issued.
type AuthCookieSettings struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// AuthController handles the Google OAuth login flow and session endpoints.
type AuthController struct {
	loginUseCase    *auth.StartGoogleLoginUseCase
	callbackUseCase *auth.HandleGoogleCallbackUseCase
	profileUseCase  *auth.GetProfileUseCase
	logoutUseCase   *auth.LogoutUseCase
	frontendURL     string
	cookies         AuthCookieSettings
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.StartGoogleLoginUseCase,
	callbackUseCase *auth.HandleGoogleCallbackUseCase,
	profileUseCase *auth.GetProfileUseCase,
	logoutUseCase *auth.LogoutUseCase,
	frontendURL string,
	cookies AuthCookieSettings,
) *AuthController {
	return &AuthController{
		loginUseCase:    loginUseCase,
		callbackUseCase: callbackUseCase,
		profileUseCase:  profileUseCase,
		logoutUseCase:   logoutUseCase,
		frontendURL:     frontendURL,
		cookies:         cookies,
	}
}

// GoogleLogin handles GET /api/auth/google requests. It redirects the
// browser to the Google consent screen.
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	output, err := c.loginUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to start login flow",
		})
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, output.AuthURL)
}

// GoogleCallback handles GET /api/auth/google/callback requests. On success
// it sets the session cookies and redirects back to the frontend.
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	code := ctx.Query("code")
	if state == "" || code == "" {
		ctx.Redirect(http.StatusTemporaryRedirect, c.frontendURL+"/login?error=oauth_failed")
		return
	}

	output, err := c.callbackUseCase.Execute(ctx.Request.Context(), auth.HandleGoogleCallbackInput{
		State: state,
		Code:  code,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrInvalidOAuthState):
			ctx.Redirect(http.StatusTemporaryRedirect, c.frontendURL+"/login?error=invalid_state")
		default:
			ctx.Redirect(http.StatusTemporaryRedirect, c.frontendURL+"/login?error=oauth_failed")
		}
		return
	}

	c.setSessionCookies(ctx, output.Tokens.AccessToken, output.Tokens.RefreshToken)
	ctx.Redirect(http.StatusTemporaryRedirect, c.frontendURL+"/dashboard")
}

// Me handles GET /api/auth/user requests.
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	user, err := c.profileUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve user profile",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Logout handles GET /api/auth/logout requests. It revokes the refresh
// token if one is present and clears both session cookies. Logout always
// succeeds from the client's point of view.
func (c *AuthController) Logout(ctx *gin.Context) {
	refreshToken, _ := ctx.Cookie(middleware.RefreshTokenCookie)
	c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutInput{
		RefreshToken: refreshToken,
	})

	c.clearSessionCookies(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

func (c *AuthController) setSessionCookies(ctx *gin.Context, accessToken, refreshToken string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AccessTokenCookie, accessToken,
		int(c.cookies.AccessTTL.Seconds()), "/", "", c.cookies.Secure, true)
	ctx.SetCookie(middleware.RefreshTokenCookie, refreshToken,
		int(c.cookies.RefreshTTL.Seconds()), "/", "", c.cookies.Secure, true)
}

func (c *AuthController) clearSessionCookies(ctx *gin.Context) {
	ctx.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", c.cookies.Secure, true)
	ctx.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", c.cookies.Secure, true)
}
