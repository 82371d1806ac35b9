package model

// Provider OAuth 공급자
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderNaver  Provider = "naver"
	ProviderKakao  Provider = "kakao"
)

// String 메서드
func (p Provider) String() string {
	return string(p)
}
