package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
)

const KindMaintenanceReindex = "maintenance_reindex"

type reindexParams struct {
	Items int           `json:"items"`
	Batch int           `json:"batch"`
	Pause time.Duration `json:"pause"`
}

// maintenanceReindex 항목을 배치 단위로 재색인하는 유지보수 작업입니다.
// 시스템 전체에 영향을 주므로 소유자가 아닌 관리자만 취소할 수 있습니다.
type maintenanceReindex struct {
	params reindexParams
}

func maintenanceReindexDefinition() Definition {
	return Definition{
		Kind:               KindMaintenanceReindex,
		Description:        "전체 항목을 배치 단위로 재색인합니다 (관리자만 취소 가능)",
		CancellableByOwner: false,
		New:                newMaintenanceReindex,
	}
}

func newMaintenanceReindex(raw json.RawMessage) (Job, error) {
	params := reindexParams{Items: 100, Batch: 10, Pause: 100 * time.Millisecond}
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}

	if params.Items < 1 {
		return nil, apperrors.Newf(apperrors.InvalidInput, "items는 1 이상이어야 합니다 (items=%d)", params.Items)
	}
	if params.Batch < 1 {
		return nil, apperrors.Newf(apperrors.InvalidInput, "batch는 1 이상이어야 합니다 (batch=%d)", params.Batch)
	}
	if params.Pause < 0 {
		return nil, apperrors.Newf(apperrors.InvalidInput, "pause는 음수일 수 없습니다 (pause=%s)", params.Pause)
	}

	return &maintenanceReindex{params: params}, nil
}

func (m *maintenanceReindex) Run(ctx context.Context, progress ProgressReporter) (any, error) {
	total := int64(m.params.Items)

	for done := int64(0); done < total; {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.params.Pause):
		}

		done = min(done+int64(m.params.Batch), total)
		if err := progress.RecordProgress(done, total); err != nil {
			return nil, err
		}
	}

	return fmt.Sprintf("reindexed %d items", total), nil
}
