package lifecycle

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocpay1889/baba-shoping/internal/domain"
)

var now = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func orderAged(d time.Duration) *domain.OrderRecord {
	return &domain.OrderRecord{OrderID: "BABA1759320000000", CreatedAt: now.Add(-d)}
}

func TestStatusFor_Boundaries(t *testing.T) {
	cases := []struct {
		elapsed  time.Duration
		stage    domain.Stage
		progress int
		eta      string
	}{
		{0, domain.StageConfirmed, 25, "Within 5-7 days"},
		{2*time.Hour - time.Millisecond, domain.StageConfirmed, 25, "Within 5-7 days"},
		{2 * time.Hour, domain.StageProcessing, 50, "Within 4-6 days"},
		{24*time.Hour - time.Millisecond, domain.StageProcessing, 50, "Within 4-6 days"},
		{24 * time.Hour, domain.StageShipped, 75, "Within 2-4 days"},
		{48*time.Hour - time.Millisecond, domain.StageShipped, 75, "Within 2-4 days"},
		{48 * time.Hour, domain.StageOutForDelivery, 90, "Today or Tomorrow"},
		{30 * 24 * time.Hour, domain.StageOutForDelivery, 90, "Today or Tomorrow"},
	}
	for _, tc := range cases {
		t.Run(tc.elapsed.String(), func(t *testing.T) {
			s := StatusFor(tc.elapsed)
			assert.Equal(t, tc.stage, s.Stage)
			assert.Equal(t, tc.progress, s.Progress)
			assert.Equal(t, tc.eta, s.EstimatedDelivery)
			assert.NotEmpty(t, s.Description)
		})
	}
}

func TestDeriveTrackingStatus_ClockSkew(t *testing.T) {
	// order stamped 30h in the future behaves like one 30h in the past
	future := DeriveTrackingStatus(now.Add(30*time.Hour), now)
	past := DeriveTrackingStatus(now.Add(-30*time.Hour), now)
	assert.Equal(t, past, future)
	assert.Equal(t, domain.StageShipped, future.Stage)
}

func TestDeriveTrackingStatus_Monotonic(t *testing.T) {
	prev := 0
	for h := 0; h <= 72; h++ {
		s := DeriveTrackingStatus(now.Add(-time.Duration(h)*time.Hour), now)
		require.GreaterOrEqual(t, s.Progress, prev, "hour %d", h)
		prev = s.Progress
	}
}

func TestDerive_Idempotent(t *testing.T) {
	o := orderAged(5 * time.Hour)
	a := Derive(*o, nil, now)
	b := Derive(*o, nil, now)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("derive not pure (-a +b):\n%s", diff)
	}
}

func TestDeriveSteps(t *testing.T) {
	got := DeriveSteps(75)
	want := []domain.OrderStep{
		{Number: 1, Step: domain.StepPlaced, Name: "Order Placed", Completed: true},
		{Number: 2, Step: domain.StepConfirmed, Name: "Confirmed", Completed: true},
		{Number: 3, Step: domain.StepProcessing, Name: "Processing", Completed: true},
		{Number: 4, Step: domain.StepShipped, Name: "Shipped", Completed: true},
		{Number: 5, Step: domain.StepDelivered, Name: "Delivered", Completed: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
}

func completed(steps []domain.OrderStep) map[domain.Step]bool {
	m := make(map[domain.Step]bool, len(steps))
	for _, s := range steps {
		m[s.Step] = s.Completed
	}
	return m
}

func TestEngine_Scenarios(t *testing.T) {
	e := NewEngine(func() time.Time { return now })

	t.Run("no order", func(t *testing.T) {
		_, err := e.Track(nil, nil)
		require.ErrorIs(t, err, ErrNoOrder)
	})

	t.Run("one hour", func(t *testing.T) {
		v, err := e.Track(orderAged(time.Hour), nil)
		require.NoError(t, err)
		assert.Equal(t, domain.StageConfirmed, v.Tracking.Stage)
		assert.Equal(t, 25, v.Tracking.Progress)
		c := completed(v.Steps)
		assert.True(t, c[domain.StepPlaced])
		assert.True(t, c[domain.StepConfirmed])
		assert.False(t, c[domain.StepProcessing])
		assert.False(t, c[domain.StepShipped])
		assert.False(t, c[domain.StepDelivered])
	})

	t.Run("thirty hours", func(t *testing.T) {
		v, err := e.Track(orderAged(30*time.Hour), nil)
		require.NoError(t, err)
		assert.Equal(t, domain.StageShipped, v.Tracking.Stage)
		assert.Equal(t, 75, v.Tracking.Progress)
		c := completed(v.Steps)
		assert.True(t, c[domain.StepShipped])
		assert.False(t, c[domain.StepDelivered])
	})

	t.Run("fifty hours", func(t *testing.T) {
		pay := &domain.PaymentConfirmation{OrderID: "BABA20000000"}
		v, err := e.Track(orderAged(50*time.Hour), pay)
		require.NoError(t, err)
		assert.Equal(t, domain.StageOutForDelivery, v.Tracking.Stage)
		assert.Equal(t, 90, v.Tracking.Progress)
		for _, s := range v.Steps {
			assert.True(t, s.Completed, s.Name)
		}
		require.NotNil(t, v.Payment)
		assert.Equal(t, "BABA20000000", v.Payment.OrderID)
		// the view keeps the order record's id
		assert.Equal(t, "BABA1759320000000", v.Order.OrderID)
	})
}
