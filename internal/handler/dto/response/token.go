package response

import "parkpass/internal/usecase/commands"

type TokenResponse struct {
	Token     string `json:"token"`
	IssuedAt  int64  `json:"issuedAt"`
	ExpiresAt int64  `json:"expiresAt"`
}

func FromMintResult(r *commands.MintTokenResult) *TokenResponse {
	return &TokenResponse{
		Token:     r.Token,
		IssuedAt:  r.IssuedAt.UnixMilli(),
		ExpiresAt: r.ExpiresAt.UnixMilli(),
	}
}
