package dto

// Envelope 는 모든 핸들러가 사용하는 공통 응답 형식이다.
// 성공 시 Data, 실패 시 Message 를 채우며 Error 는 비운영 환경에서만 내려준다.
type Envelope struct {
	Success bool   `json:"success" example:"true"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty" example:"Failed to fetch leads"`
	Error   string `json:"error,omitempty"`
}

// ErrorEnvelope documents the failure shape for swagger.
type ErrorEnvelope struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Failed to fetch leads"`
	Error   string `json:"error,omitempty" example:"pagination count: query failed: connection refused"`
}
