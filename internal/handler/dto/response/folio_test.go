//go:build unit

package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-folio/internal/domain/folio"
	"hotel-folio/internal/handler/dto/response"
	"hotel-folio/internal/usecase/queries"
	"hotel-folio/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFolioView_KeepsChargeTimes(t *testing.T) {
	dinnerAt := time.Date(2024, 1, 2, 20, 30, 0, 0, time.UTC)
	spaAt := time.Date(2024, 1, 2, 21, 15, 0, 0, time.UTC)

	dinner := builder.NewChargeBuilder().WithDate(dinnerAt).BuildRecord()
	spa := builder.NewChargeBuilder().AsService().WithDate(spaAt).WithDescription("Spa").BuildRecord()
	ledger, err := folio.Aggregate(nil, []folio.ChargeRecord{dinner}, []folio.ChargeRecord{spa})
	require.NoError(t, err)

	view := &queries.FolioView{
		Reservation: builder.NewReservationBuilder().BuildView(),
		Items:       ledger.Items(),
		Subtotals:   ledger.Subtotals(),
		GrandTotal:  ledger.GrandTotal(),
	}

	res, err := response.FromFolioView(view)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.True(t, res.Items[0].Date.Equal(dinnerAt), "got %s", res.Items[0].Date)
	assert.True(t, res.Items[1].Date.Equal(spaAt), "got %s", res.Items[1].Date)

	raw, err := json.Marshal(res.Items[0])
	require.NoError(t, err)
	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, "2024-01-02T20:30:00Z", wire["date"])
}
