package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/dto"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/middleware"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/procedure"
	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/pkg/apierrors"
)

// ResultEnvelope wraps a successful procedure result.
type ResultEnvelope struct {
	Result ResultData `json:"result"`
}

type ResultData struct {
	Data any `json:"data"`
}

type ProcedureHandler struct {
	router *procedure.Router
}

func NewProcedureHandler(router *procedure.Router) *ProcedureHandler {
	return &ProcedureHandler{router: router}
}

// Query runs a read procedure. The input travels URL-encoded in the "input" query parameter.
func (h *ProcedureHandler) Query(c *gin.Context) {
	var input json.RawMessage
	if raw := c.Query("input"); raw != "" {
		input = json.RawMessage(raw)
	}
	h.call(c, procedure.Query, input)
}

// Mutate runs a write procedure with the request body as input.
func (h *ProcedureHandler) Mutate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		lang := middleware.GetLang(c)
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.KindValidation, apierrors.MsgInvalidProcedureInput, lang),
		)
		return
	}
	h.call(c, procedure.Mutation, body)
}

func (h *ProcedureHandler) List(c *gin.Context) {
	procs := h.router.Procedures()
	items := make([]dto.ProcedureItem, 0, len(procs))
	for _, p := range procs {
		items = append(items, dto.ProcedureItem{Name: p.Name, Kind: string(p.Kind)})
	}
	c.JSON(http.StatusOK, ResultEnvelope{Result: ResultData{Data: items}})
}

func (h *ProcedureHandler) call(c *gin.Context, kind procedure.Kind, input json.RawMessage) {
	name := c.Param("procedure")

	data, err := h.router.Call(c.Request.Context(), kind, name, input)
	if err != nil {
		h.writeError(c, name, err)
		return
	}

	c.JSON(http.StatusOK, ResultEnvelope{Result: ResultData{Data: data}})
}

func (h *ProcedureHandler) writeError(c *gin.Context, name string, err error) {
	lang := middleware.GetLang(c)

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		issues := make([]apierrors.FieldIssue, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			issues = append(issues, apierrors.FieldIssue{Field: f.Field, Rule: f.Rule, Param: f.Param})
		}
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.KindValidation, apierrors.MsgValidationFailed, lang).WithFields(issues),
		)
	case errors.Is(err, procedure.ErrProcedureNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.KindNotFound, apierrors.MsgProcedureNotFound, lang),
		)
	case errors.Is(err, procedure.ErrMethodNotSupported):
		c.JSON(
			http.StatusMethodNotAllowed,
			apierrors.CreateError(http.StatusMethodNotAllowed, apierrors.KindMethodNotSupported, apierrors.MsgMethodNotSupported, lang),
		)
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.KindNotFound, apierrors.MsgResourceNotFound, lang),
		)
	case errors.Is(err, domain.ErrReference):
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.KindReference, apierrors.MsgUnknownReference, lang).
				WithFields(referenceIssues(err)),
		)
	case errors.Is(err, domain.ErrConflict):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.KindConflict, apierrors.MsgResourceConflict, lang).
				WithFields(conflictIssues(err)),
		)
	default:
		zap.L().Error("procedure failed",
			zap.String("procedure", name),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.KindStore, apierrors.MsgStoreFailure, lang),
		)
	}
}

func referenceIssues(err error) []apierrors.FieldIssue {
	var ref *domain.ReferenceError
	if !errors.As(err, &ref) || ref.Field == "" {
		return nil
	}
	return []apierrors.FieldIssue{{Field: ref.Field, Rule: "exists"}}
}

func conflictIssues(err error) []apierrors.FieldIssue {
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) || conflict.Field == "" {
		return nil
	}
	return []apierrors.FieldIssue{{Field: conflict.Field, Rule: "unique"}}
}
