package documenterrors

import (
	"net/http"

	"leaveflow/internal/shared/apperror"
)

var ErrRenderFailed = apperror.New(
	apperror.CodeInternalError,
	"leave application document could not be rendered",
	http.StatusInternalServerError,
)
