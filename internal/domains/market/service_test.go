package market

import (
	"context"
	"errors"
	"testing"
)

func TestQuotesListsAllCrops(t *testing.T) {
	svc := NewMarketService()
	quotes, err := svc.Quotes(context.Background())
	if err != nil {
		t.Fatalf("quotes: %v", err)
	}
	if len(quotes) != 4 {
		t.Fatalf("want 4 crops, got %d", len(quotes))
	}
	if quotes[1].Name != "Rice (Paddy)" || quotes[1].FPO != 2100 {
		t.Errorf("unexpected rice quote: %+v", quotes[1])
	}
}

func TestQuoteByName(t *testing.T) {
	svc := NewMarketService()
	q, err := svc.Quote(context.Background(), "Mustard")
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if q.Mandi != 5450 || q.Trend != "-0.8%" {
		t.Errorf("unexpected mustard quote: %+v", q)
	}

	if _, err := svc.Quote(context.Background(), "Quinoa"); !errors.Is(err, ErrUnknownCrop) {
		t.Errorf("want ErrUnknownCrop, got %v", err)
	}
}

func TestFPOBeatsOtherChannels(t *testing.T) {
	svc := NewMarketService()
	quotes, _ := svc.Quotes(context.Background())
	for _, q := range quotes {
		if q.FPO <= q.Mandi || q.FPO <= q.Private {
			t.Errorf("%s: FPO rate should lead both channels: %+v", q.Name, q)
		}
	}
}

func TestAdvice(t *testing.T) {
	svc := NewMarketService()
	advice, err := svc.Advice(context.Background(), "Wheat")
	if err != nil {
		t.Fatalf("advice: %v", err)
	}
	if advice.Recommendation != "Hold & Sell Later" {
		t.Errorf("unexpected recommendation: %q", advice.Recommendation)
	}

	if _, err := svc.Advice(context.Background(), "Quinoa"); !errors.Is(err, ErrUnknownCrop) {
		t.Errorf("want ErrUnknownCrop, got %v", err)
	}
}

func TestTrendCoversTradingWeek(t *testing.T) {
	svc := NewMarketService()
	trend, _ := svc.Trend(context.Background())
	if len(trend) != 5 {
		t.Fatalf("want 5 trading days, got %d", len(trend))
	}
	if trend[0].Day != "Mon" || trend[4].Day != "Fri" {
		t.Errorf("unexpected day ordering: %+v", trend)
	}
}
