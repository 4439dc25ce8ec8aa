package blueprint

// InvalidInputError - 컨셉 텍스트가 비어있을 때 반환되는 유일한 엔진 에러
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func newInvalidInputError() *InvalidInputError {
	return &InvalidInputError{
		Message: "A non-empty concept is required. Describe your video idea first.",
	}
}
