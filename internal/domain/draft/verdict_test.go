package draft

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		label  string
		want   float64
		wantOK bool
	}{
		{label: "Steal", want: 4, wantOK: true},
		{label: "Value", want: 3, wantOK: true},
		{label: "Fair", want: 2, wantOK: true},
		{label: "Reach", want: 1, wantOK: true},
		{label: "Bust", want: 0, wantOK: true},
		{label: "No Verdict", wantOK: false},
		{label: "", wantOK: false},
		{label: "steal", wantOK: false},
		{label: " Steal", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Score(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("Score(%q) ok=%v want=%v", tt.label, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("Score(%q)=%v want=%v", tt.label, got, tt.want)
			}
		})
	}
}

func TestParseVerdict_RoundTripsLabels(t *testing.T) {
	for _, v := range Verdicts {
		got, ok := ParseVerdict(v.String())
		if !ok || got != v {
			t.Fatalf("ParseVerdict(%q)=(%v,%v) want=(%v,true)", v.String(), got, ok, v)
		}
		if !IsKnownLabel(v.String()) {
			t.Fatalf("expected %q to be a known label", v.String())
		}
	}
	if IsKnownLabel("Great") {
		t.Fatalf("did not expect Great to be a known label")
	}
}

func TestVerdictStyle(t *testing.T) {
	if got := VerdictSteal.Style(); got != "bg-purple-100 text-purple-800" {
		t.Fatalf("unexpected steal style: %s", got)
	}
	if got := VerdictBust.Style(); got != "bg-gray-800 text-white" {
		t.Fatalf("unexpected bust style: %s", got)
	}
	if got := (Pick{Verdict: "Unheard"}).ParsedVerdict().Style(); got != VerdictUnrated.Style() {
		t.Fatalf("expected unknown label to use unrated style, got %s", got)
	}
}

func TestParseEvalMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    EvalMethod
		wantErr bool
	}{
		{in: "", want: EvalAveragePPG},
		{in: "average_ppg", want: EvalAveragePPG},
		{in: "weighted_ppg", want: EvalWeightedPPG},
		{in: "total_points", want: EvalTotalPoints},
		{in: "median", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEvalMethod(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse eval method: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseEvalMethod(%q)=%v want=%v", tt.in, got, tt.want)
			}
			if tt.in != "" && got.Key() != tt.in {
				t.Fatalf("Key()=%q want=%q", got.Key(), tt.in)
			}
		})
	}
}
