package pipeline

import (
	"reflect"
	"testing"
)

func TestSegmentTranscriptSingleAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"one plain amount", "I paid 500 for food"},
		{"one currency amount", "Got ₹500 from mom"},
		{"no amounts at all", "hello there"},
		{"empty transcript", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentTranscript(tt.text)
			want := []string{tt.text}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("SegmentTranscript(%q) = %v, want %v", tt.text, got, want)
			}
		})
	}
}

func TestSegmentTranscriptSentenceBoundaries(t *testing.T) {
	got := SegmentTranscript("Paid 1500 for Uber. It was raining. Got 200 from mom!")
	want := []string{"Paid 1500 for Uber", "Got 200 from mom"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SegmentTranscript() = %v, want %v", got, want)
	}
}

func TestSegmentTranscriptConjunction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "both parts have their own action",
			text: "Paid 1500 for Uber and Rs 200 I received from my mother",
			want: []string{"Paid 1500 for Uber", "Rs 200 I received from my mother"},
		},
		{
			name: "second part inherits action from the first",
			text: "Paid 1500 for Uber and 200 for food",
			want: []string{"Paid 1500 for Uber", "200 for food"},
		},
		{
			name: "amountless part is dropped",
			text: "paid 500 for uber and went home and got 200 from mom",
			want: []string{"paid 500 for uber", "got 200 from mom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentTranscript(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentTranscript(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSegmentTranscriptWindows(t *testing.T) {
	// No sentence boundaries and no "and", so segmentation falls through
	// to the window extractor.
	got := SegmentTranscript("paid 1500 for uber then gave 200 to ramu")
	want := []string{"paid 1500 for uber then gave", "gave 200 to ramu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SegmentTranscript() = %v, want %v", got, want)
	}
}

func TestSegmentTranscriptPreservesOrder(t *testing.T) {
	got := SegmentTranscript("Got 500 from client. Spent 200 on chai. Paid 99 for parking.")
	want := []string{"Got 500 from client", "Spent 200 on chai", "Paid 99 for parking"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SegmentTranscript() = %v, want %v", got, want)
	}
}
