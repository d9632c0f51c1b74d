package handler

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/process-server/internal/service/api/auth"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	apihandler "github.com/darkkaiser/process-server/internal/service/api/handler"
	"github.com/darkkaiser/process-server/internal/service/api/httputil"
	"github.com/darkkaiser/process-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/process-server/internal/service/api/v1/model/response"
	"github.com/darkkaiser/process-server/internal/service/contract"
	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// GetStatusHandler godoc
// @Summary 프로세스 상태 조회
// @Description 프로세스 하나의 상태와 진행률을 반환합니다. 응답의 url은 요청 URI 그대로입니다.
// @Tags Process
// @Produce json
// @Param X-Account-Id header string true "계정 ID"
// @Param X-App-Key header string true "계정 App Key"
// @Param keyId path string true "프로세스 키"
// @Success 200 {object} contract.ProcessStatus "프로세스 상태"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 404 {object} response.ErrorResponse "존재하지 않는 프로세스"
// @Security ApiKeyAuth
// @Router /api/v1/process/key/{keyId} [get]
func (h *Handler) GetStatusHandler(c echo.Context) error {
	key := contract.ProcessKey(c.Param(constants.PathParamKeyID))

	status, err := h.processManager.Status(key, baseURL(c)+c.Request().URL.RequestURI())
	if err != nil {
		return httputil.FromAppError(err)
	}

	return c.JSON(http.StatusOK, status)
}

// ListHandler godoc
// @Summary 프로세스 목록 조회
// @Description 프로세스 상태 목록을 생성 순서대로 반환합니다.
// @Description includeFinished를 생략하면 종료되지 않은 프로세스만 반환합니다.
// @Tags Process
// @Produce json
// @Param X-Account-Id header string true "계정 ID"
// @Param X-App-Key header string true "계정 App Key"
// @Param includeFinished query bool false "종료된 프로세스 포함 여부"
// @Success 200 {array} contract.ProcessStatus "프로세스 상태 목록"
// @Failure 400 {object} response.ErrorResponse "includeFinished 값 오류"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Security ApiKeyAuth
// @Router /api/v1/process [get]
func (h *Handler) ListHandler(c echo.Context) error {
	includeFinished := false
	if v := c.QueryParam(constants.QueryParamIncludeFinished); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBool)
		}
		includeFinished = b
	}

	statuses := h.processManager.List(includeFinished, func(key contract.ProcessKey) string {
		return statusLocator(c, key)
	})

	return c.JSON(http.StatusOK, statuses)
}

// CancelHandler godoc
// @Summary 프로세스 취소
// @Description 프로세스 취소를 요청하고 취소 이후의 상태를 반환합니다.
// @Description 이미 종료된 프로세스는 권한과 무관하게 현재 상태를 그대로 반환합니다.
// @Tags Process
// @Produce json
// @Param X-Account-Id header string true "계정 ID"
// @Param X-App-Key header string true "계정 App Key"
// @Param keyId path string true "프로세스 키"
// @Success 200 {object} contract.ProcessStatus "취소 이후의 프로세스 상태"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 403 {object} response.ErrorResponse "취소 권한 없음"
// @Failure 404 {object} response.ErrorResponse "존재하지 않는 프로세스"
// @Security ApiKeyAuth
// @Router /api/v1/process/cancel/key/{keyId} [post]
func (h *Handler) CancelHandler(c echo.Context) error {
	account := auth.MustGetAccount(c)
	key := contract.ProcessKey(c.Param(constants.PathParamKeyID))

	status, err := h.processManager.Cancel(key, account.Requester(), cancelLocator(c, key))
	if err != nil {
		return httputil.FromAppError(err)
	}

	applog.WithComponentAndFields(constants.ComponentHandlerProcess, applog.Fields{
		"process_key": key,
		"account_id":  account.ID,
		"status_code": status.StatusCode,
	}).Info(constants.LogMsgProcessCancelled)

	return c.JSON(http.StatusOK, status)
}

// SubmitHandler godoc
// @Summary 작업 제출
// @Description 백그라운드 작업을 제출하고 상태 조회 URL을 반환합니다. 인증된 계정이 프로세스의 소유자가 됩니다.
// @Description
// @Description ```bash
// @Description curl -X POST "http://localhost:8080/api/v1/process" \
// @Description   -H "Content-Type: application/json" \
// @Description   -H "X-Account-Id: alice" -H "X-App-Key: your-app-key" \
// @Description   -d '{"kind":"countdown","params":{"steps":10,"interval":"1s"}}'
// @Description ```
// @Tags Process
// @Accept json
// @Produce json
// @Param X-Account-Id header string true "계정 ID"
// @Param X-App-Key header string true "계정 App Key"
// @Param request body request.SubmitRequest true "작업 종류와 파라미터"
// @Success 202 {object} response.SubmitResponse "제출 성공"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (알 수 없는 작업 종류, 파라미터 오류 등)"
// @Failure 401 {object} response.ErrorResponse "인증 실패"
// @Failure 503 {object} response.ErrorResponse "대기열이 가득 찼거나 서비스가 실행 중이 아님"
// @Security ApiKeyAuth
// @Router /api/v1/process [post]
func (h *Handler) SubmitHandler(c echo.Context) error {
	account := auth.MustGetAccount(c)

	req := new(request.SubmitRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}
	if err := apihandler.ValidateRequest(req); err != nil {
		return httputil.NewBadRequestError(apihandler.FormatValidationError(err))
	}

	key, err := h.processManager.Submit(c.Request().Context(), &contract.SubmitRequest{
		Kind:      req.Kind,
		Params:    req.Params,
		Requester: account.Requester(),
	})
	if err != nil {
		return httputil.FromAppError(err)
	}

	applog.WithComponentAndFields(constants.ComponentHandlerProcess, applog.Fields{
		"process_key": key,
		"kind":        req.Kind,
		"account_id":  account.ID,
	}).Info(constants.LogMsgProcessSubmitted)

	return c.JSON(http.StatusAccepted, response.SubmitResponse{
		Key: key,
		URL: statusLocator(c, key),
	})
}
