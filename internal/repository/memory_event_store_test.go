package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"SqueezeWatch/internal/domain/models"
)

func TestAppendAndList(t *testing.T) {
	s := NewMemoryEventStore()
	require.Empty(t, s.List("GME"))

	e1 := models.CycleEvent{Ticker: "GME", CycleType: models.CycleTypeSettlement, Date: "2025-01-15", ReceivedAt: time.Now()}
	e2 := models.CycleEvent{Ticker: "GME", CycleType: models.CycleTypeMajor, Date: "2025-02-01", ReceivedAt: time.Now()}
	s.Append("GME", e1)
	s.Append("GME", e2)

	got := s.List("GME")
	require.Len(t, got, 2)
	require.Equal(t, e1.CycleType, got[0].CycleType)
	require.Equal(t, e2.CycleType, got[1].CycleType)
}

func TestListReturnsCopy(t *testing.T) {
	s := NewMemoryEventStore()
	s.Append("GME", models.CycleEvent{CycleType: models.CycleTypeSettlement})

	got := s.List("GME")
	got[0].CycleType = "mutated"

	require.Equal(t, models.CycleTypeSettlement, s.List("GME")[0].CycleType)
}

func TestTickersSorted(t *testing.T) {
	s := NewMemoryEventStore()
	s.Append("GME", models.CycleEvent{})
	s.Append("AMC", models.CycleEvent{})
	s.Append("BB", models.CycleEvent{})

	require.Equal(t, []string{"AMC", "BB", "GME"}, s.Tickers())
}

func TestConcurrentAppend(t *testing.T) {
	s := NewMemoryEventStore()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				s.Append("GME", models.CycleEvent{})
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	require.Len(t, s.List("GME"), 800)
}
