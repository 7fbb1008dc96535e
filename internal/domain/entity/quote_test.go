package entity

import (
	"strings"
	"testing"
	"time"
)

func floatPtr(f float64) *float64 { return &f }

func TestQuote_CanGeneratePolicy(t *testing.T) {
	tests := []struct {
		name   string
		status QuoteStatus
		price  *float64
		want   bool
	}{
		{"approved with price", QuoteStatusApproved, floatPtr(150), true},
		{"approved without price", QuoteStatusApproved, nil, false},
		{"rejected with price", QuoteStatusRejected, floatPtr(150), false},
		{"created placeholder", QuoteStatusCreated, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quote{Status: tt.status, Price: tt.price}
			if got := q.CanGeneratePolicy(); got != tt.want {
				t.Errorf("CanGeneratePolicy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuote_IsExpired(t *testing.T) {
	fresh := Quote{CreatedAt: time.Now().Add(-time.Hour)}
	if fresh.IsExpired() {
		t.Error("hour-old quote must not be expired")
	}

	stale := Quote{CreatedAt: time.Now().Add(-QuoteTTL - time.Minute)}
	if !stale.IsExpired() {
		t.Error("quote past the TTL must be expired")
	}
}

func TestQuote_SafeLogString(t *testing.T) {
	q := NewQuote(QuoteStatusApproved, Application{Document: "12345678900"})
	q.Price = floatPtr(172.5)

	s := q.SafeLogString()
	if strings.Contains(s, "12345678900") {
		t.Errorf("log string leaks the raw document: %s", s)
	}
	if !strings.Contains(s, "8900") {
		t.Errorf("log string should keep the document suffix: %s", s)
	}
	if !strings.Contains(s, "172.50") {
		t.Errorf("log string should carry the price: %s", s)
	}
}
