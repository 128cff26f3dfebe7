package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-docinsert/internal/yamlutil"
)

type settings struct {
	Name  string   `yaml:"name"`
	Count int      `yaml:"count"`
	Tags  []string `yaml:"tags"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		want    settings
		wantErr error
	}{
		{
			name: "known keys",
			data: []byte("name: doc\ncount: 2\ntags: [a, b]"),
			dest: &settings{},
			want: settings{Name: "doc", Count: 2, Tags: []string{"a", "b"}},
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &settings{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: doc"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "too large",
			data:    []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize)),
			dest:    &settings{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			got := *tt.dest.(*settings)
			if got.Name != tt.want.Name || got.Count != tt.want.Count || strings.Join(got.Tags, ",") != strings.Join(tt.want.Tags, ",") {
				t.Errorf("UnmarshalStrict() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalStrict_DecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "unknown key", data: "name: doc\ncolour: red\n"},
		{name: "bad syntax", data: "name: [unclosed\n"},
		{name: "wrong type", data: "count: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict([]byte(tt.data), &settings{})
			var de *yamlutil.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("UnmarshalStrict() error = %v, want *DecodeError", err)
			}
			if de.Source == "" {
				t.Error("DecodeError.Source is empty")
			}
			if !strings.HasPrefix(err.Error(), "yamlutil: ") {
				t.Errorf("error %q lacks package prefix", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarshal
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := settings{Name: "doc", Count: 1, Tags: []string{"x"}}
	out, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(out), "name: doc") {
		t.Errorf("Marshal() = %q, want name key", out)
	}

	var back settings
	if err := yamlutil.UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("UnmarshalStrict(Marshal()) error: %v", err)
	}
	if back.Name != in.Name || back.Count != in.Count || len(back.Tags) != 1 {
		t.Errorf("round trip = %+v, want %+v", back, in)
	}
}
