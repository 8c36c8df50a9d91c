package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/patient"
	"labflow/internal/core/domain/services"
)

const callerContextKey = "labflow.caller"

// identityClaims is the token shape issued by the external identity
// service. The subject carries the account id, the role claim the
// laboratory role.
type identityClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IdentityMiddleware decodes the bearer token of the external identity
// service into a services.Caller and stores it on the request context.
// Requests without a valid token are rejected before reaching a handler.
func IdentityMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authorization := ctx.Request().Header.Get(echo.HeaderAuthorization)
			rawToken, found := strings.CutPrefix(authorization, "Bearer ")
			if !found || rawToken == "" {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims := &identityClaims{}
			token, err := jwt.ParseWithClaims(rawToken, claims, func(_ *jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "invalid bearer token",
				})
			}

			caller, err := callerFromClaims(claims)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "invalid identity claims",
				})
			}

			ctx.Set(callerContextKey, caller)
			return next(ctx)
		}
	}
}

func callerFromClaims(claims *identityClaims) (services.Caller, error) {
	role, err := patient.ParseRole(claims.Role)
	if err != nil {
		return services.Caller{}, err
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return services.Caller{}, err
	}

	return services.NewCaller(role, accountID)
}

// callerFrom returns the authenticated caller stored by IdentityMiddleware.
func callerFrom(ctx echo.Context) (services.Caller, bool) {
	caller, ok := ctx.Get(callerContextKey).(services.Caller)
	return caller, ok
}
