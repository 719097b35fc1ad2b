package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"project_management/be/biz/config"
	"project_management/be/biz/model/errs"
	"project_management/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrUnexpectedJwtMethod = errors.New("unexpected jwt method")
	ErrJwtInvalid          = errors.New("jwt is invalid")
	ErrJwtExpired          = errors.New("jwt is expired")
	ErrSecretMissing       = errors.New("jwt token secret is not configured")
)

const defaultExpiration = 6 * time.Hour

// ValidateMW rejects requests without a valid token and stores the claims
// in the context for GetPayload.
func ValidateMW() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwtStr := exactJWT(c)
		if jwtStr == "" {
			hlog.CtxInfof(ctx, "authorization failed, token is empty")
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		claims, err := validateToken(jwtStr, config.GetJWTConfig().TokenSecret)
		if err != nil {
			hlog.CtxInfof(ctx, "jwt invalid: %v", err)
			resp.AbortWithErr(c, errs.Unauthorized)
			return
		}

		ctx = context.WithValue(ctx, Payload{}, claims)

		c.Next(ctx)
	}
}

type Payload struct {
	UserID string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type Claims struct {
	jwt.RegisteredClaims
	Payload
}

// GenerateToken signs payload with HS256 and returns the token and its expiry.
func GenerateToken(ctx context.Context, payload Payload) (string, int64, error) {
	jwtConf := config.GetJWTConfig()
	if jwtConf.TokenSecret == "" {
		hlog.CtxErrorf(ctx, "generate token err: %v", ErrSecretMissing)
		return "", 0, ErrSecretMissing
	}

	now := time.Now()
	expAt := now.Add(expiration(jwtConf))

	jwtStr, err := generateToken(payload, now, expAt, uuid.NewString(), jwtConf.TokenSecret, jwtConf.Issuer)
	if err != nil {
		hlog.CtxErrorf(ctx, "generate token err: %v", err)
		return "", 0, err
	}

	return jwtStr, expAt.Unix(), nil
}

func GetPayload(ctx context.Context) Payload {
	claims, ok := ctx.Value(Payload{}).(*Claims)
	if ok {
		return claims.Payload
	}
	return Payload{}
}

func generateToken(payload Payload, issuedAt, expAt time.Time, tokenID, secret, issuer string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    issuer,
			ID:        tokenID,
		},
		Payload: payload,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func validateToken(tokenStr, secret string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedJwtMethod
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, ErrUnexpectedJwtMethod) {
			return nil, ErrUnexpectedJwtMethod
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrJwtExpired
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrJwtInvalid
		}
		return nil, err
	}
	if !token.Valid {
		return nil, ErrJwtInvalid
	}

	return &claims, nil
}

// exactJWT accepts "Bearer <token>" or the bare token.
func exactJWT(c *app.RequestContext) string {
	h := strings.TrimSpace(string(c.Request.Header.Peek("Authorization")))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}

func expiration(conf config.JWTConf) time.Duration {
	if conf.Expiration > 0 {
		return time.Duration(conf.Expiration) * time.Second
	}

	return defaultExpiration
}
