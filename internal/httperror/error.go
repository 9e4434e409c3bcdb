package httperror

type Error struct {
	Message string `json:"error" example:"no profile exists yet, complete onboarding first"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
