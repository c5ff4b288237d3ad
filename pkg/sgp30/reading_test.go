package sgp30

import "testing"

func TestAirQualityIsProbablyValid(t *testing.T) {
	tests := []struct {
		name    string
		reading AirQuality
		want    bool
	}{
		{
			name:    "power-on default pair is not valid",
			reading: AirQuality{CO2Equivalent: 400, VOCEquivalent: 0},
			want:    false,
		},
		{
			name:    "real measurement is valid",
			reading: AirQuality{CO2Equivalent: 450, VOCEquivalent: 12},
			want:    true,
		},
		{
			name:    "default co2 with nonzero voc is valid",
			reading: AirQuality{CO2Equivalent: 400, VOCEquivalent: 1},
			want:    true,
		},
		{
			name:    "zero pair is valid",
			reading: AirQuality{CO2Equivalent: 0, VOCEquivalent: 0},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reading.IsProbablyValid(); got != tt.want {
				t.Errorf("IsProbablyValid(%v) = %v, want %v", tt.reading, got, tt.want)
			}
		})
	}
}

func TestAirQualityString(t *testing.T) {
	got := AirQuality{CO2Equivalent: 412, VOCEquivalent: 9}.String()
	want := "CO2eq 412 ppm, TVOC 9 ppb"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRawSignalsString(t *testing.T) {
	got := RawSignals{H2Signal: 13219, EthanolSignal: 18475}.String()
	want := "H2 13219, ethanol 18475"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
