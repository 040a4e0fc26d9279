package errors

// 응답 본문의 "code" 필드로 나가는 에러 코드. HTTP 상태 매핑은 convert.go 참고.
const (
	ErrInternal        = "INTERNAL"         // 저장소/인프라 장애. 메시지는 일반 문구만 노출
	ErrNotFound        = "NOT_FOUND"        // 없거나 볼 권한이 없는 리소스
	ErrInvalidArgument = "INVALID_ARGUMENT" // 요청 검증 실패, 로그인 실패
	ErrUnauthenticated = "UNAUTHENTICATED"  // 토큰 없음/만료/위조
	ErrUnauthorized    = "UNAUTHORIZED"     // 인증은 됐지만 소유자가 아님
	ErrConflict        = "CONFLICT"         // 이메일 중복
	ErrTimeout         = "TIMEOUT"          // 외부 호출 시간 초과
	ErrNotImplemented  = "NOT_IMPLEMENTED"  // 설정되지 않은 기능 (AI 생성 등)
	ErrUpstream        = "UPSTREAM"         // LLM·ID 제공자가 실패했거나 쓸 수 없는 응답을 줌
)
