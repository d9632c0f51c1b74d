package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
)

const (
	KindCountdown = "countdown"

	defaultCountdownSteps    = 10
	defaultCountdownInterval = time.Second
	maxCountdownSteps        = 10000
	maxCountdownInterval     = time.Hour
)

type countdownParams struct {
	Steps    int           `json:"steps"`
	Interval time.Duration `json:"interval"`

	// FailAt 지정한 단계에서 실패를 발생시킵니다. 0이면 실패하지 않습니다.
	FailAt int `json:"fail_at"`
}

// countdown 정해진 간격으로 단계를 진행하는 작업입니다. 진행률 보고와 취소 동작을 확인하는 용도로 사용합니다.
type countdown struct {
	params countdownParams
}

func countdownDefinition() Definition {
	return Definition{
		Kind:               KindCountdown,
		Description:        "지정한 간격으로 steps 만큼 단계를 진행합니다",
		CancellableByOwner: true,
		New:                newCountdown,
	}
}

func newCountdown(raw json.RawMessage) (Job, error) {
	params := countdownParams{
		Steps:    defaultCountdownSteps,
		Interval: defaultCountdownInterval,
	}
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}

	if params.Steps < 1 || params.Steps > maxCountdownSteps {
		return nil, apperrors.Newf(apperrors.InvalidInput, "steps는 1에서 %d 사이의 값이어야 합니다 (steps=%d)", maxCountdownSteps, params.Steps)
	}
	if params.Interval < 0 || params.Interval > maxCountdownInterval {
		return nil, apperrors.Newf(apperrors.InvalidInput, "interval은 0에서 %s 사이여야 합니다 (interval=%s)", maxCountdownInterval, params.Interval)
	}
	if params.FailAt < 0 || params.FailAt > params.Steps {
		return nil, apperrors.Newf(apperrors.InvalidInput, "fail_at은 0에서 steps 사이의 값이어야 합니다 (fail_at=%d)", params.FailAt)
	}

	return &countdown{params: params}, nil
}

func (c *countdown) Run(ctx context.Context, progress ProgressReporter) (any, error) {
	steps := int64(c.params.Steps)
	if err := progress.RecordProgress(0, steps); err != nil {
		return nil, err
	}

	timer := time.NewTimer(c.params.Interval)
	defer timer.Stop()

	for step := int64(1); step <= steps; step++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}

		if int64(c.params.FailAt) == step {
			return nil, fmt.Errorf("countdown failed at step %d", step)
		}
		if err := progress.RecordProgress(step, steps); err != nil {
			return nil, err
		}

		timer.Reset(c.params.Interval)
	}

	return fmt.Sprintf("countdown finished after %d steps", steps), nil
}
