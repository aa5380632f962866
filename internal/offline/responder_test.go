package offline

import "testing"

func TestResolveWeatherHindi(t *testing.T) {
	r := New()

	reply, ok := r.Resolve("What is the weather", "hi")
	if !ok {
		t.Fatal("expected weather rule to match")
	}

	want := "आज 65% नमी के साथ 32°C तापमान है। अगले दो दिनों में हल्की बारिश की संभावना है।"
	if reply != want {
		t.Errorf("unexpected Hindi weather reply: %q", reply)
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := New()

	first, ok := r.Resolve("namaste bhai", "pa")
	if !ok {
		t.Fatal("expected greeting rule to match")
	}
	for i := 0; i < 5; i++ {
		again, ok := r.Resolve("namaste bhai", "pa")
		if !ok || again != first {
			t.Fatalf("resolve not deterministic on attempt %d", i)
		}
	}
}

func TestResolveLanguageFallback(t *testing.T) {
	r := New()

	// irrigation rule has no Marathi entry; must fall back to English
	reply, ok := r.Resolve("should I irrigate today", "mr")
	if !ok {
		t.Fatal("expected irrigation rule to match")
	}
	if reply != defaultRules[5].Replies["en"] {
		t.Errorf("expected English fallback, got %q", reply)
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := New()

	if reply, ok := r.Resolve("explain quantum entanglement", "en"); ok {
		t.Errorf("expected no match, got %q", reply)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	r := New()

	lower, ok1 := r.Resolve("mandi rate for wheat", "en")
	upper, ok2 := r.Resolve("MANDI RATE FOR WHEAT", "en")
	if !ok1 || !ok2 || lower != upper {
		t.Error("matching must be case insensitive")
	}
}

func TestRuleOrdering(t *testing.T) {
	r := New()

	// "rice price in rain season" mentions weather keywords too, but the
	// market-price rule sits earlier in the table and must win
	reply, ok := r.Resolve("rice price before the rain", "en")
	if !ok {
		t.Fatal("expected a match")
	}
	priceReply := defaultRules[7].Replies["en"]
	if reply != priceReply {
		t.Errorf("expected market-price rule to win, got %q", reply)
	}

	wantOrder := []string{
		"greeting", "thanks", "identity", "crop-season", "disease-symptom",
		"irrigation", "government-scheme", "market-price", "weather",
	}
	rules := r.Rules()
	if len(rules) != len(wantOrder) {
		t.Fatalf("expected %d rules, got %d", len(wantOrder), len(rules))
	}
	for i, name := range wantOrder {
		if rules[i].Name != name {
			t.Errorf("rule %d: expected %s, got %s", i, name, rules[i].Name)
		}
	}
}

func TestBareGreetingExactForms(t *testing.T) {
	r := New()

	for _, q := range []string{"hi", "hello", "namaste"} {
		if _, ok := r.Resolve(q, "en"); !ok {
			t.Errorf("expected bare %q to match greeting", q)
		}
	}
	// "high moisture" contains "hi" only as a prefix; exact form must not fire
	if reply, ok := r.Resolve("high moisture in field", "en"); ok {
		if reply == defaultRules[0].Replies["en"] {
			t.Error("greeting must not match on substring 'hi'")
		}
	}
}
