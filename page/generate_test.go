package page

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"
)

// render runs assembler through every step, fatal findings are ignored.
func render(t *testing.T, a Assembler) string {
	t.Helper()
	a.Parse()
	a.Validate()
	if st := a.Accept(true); st != StateValidated {
		t.Fatalf("Accept() = %v, want %v", st, StateValidated)
	}
	out, err := a.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return out
}

func invalidSong() SongForm {
	form := validSong()
	form.FgColour = "invalid-colour-name"
	return form
}

func TestRender_Order(t *testing.T) {
	tests := []struct {
		name  string
		steps func(a Assembler)
		want  error
	}{
		{"fresh", func(Assembler) {}, ErrNotValidated},
		{"parsed", func(a Assembler) { a.Parse() }, ErrNotValidated},
		{"validated with errors", func(a Assembler) { a.Parse(); a.Validate() }, ErrRejected},
		{"rejected", func(a Assembler) { a.Parse(); a.Validate(); a.Accept(false) }, ErrRejected},
		{"errors ignored", func(a Assembler) { a.Parse(); a.Validate(); a.Accept(true) }, nil},
		{"parsed again", func(a Assembler) { a.Parse(); a.Validate(); a.Accept(true); a.Parse() }, ErrNotValidated},
	}
	assemblers := map[string]func() Assembler{
		"song":     func() Assembler { return NewSong(invalidSong()) },
		"album":    func() Assembler { return NewAlbum(AlbumForm{}) },
		"producer": func() Assembler { return NewProducer(ProducerForm{}) },
	}
	for kind, create := range assemblers {
		for _, tt := range tests {
			t.Run(kind+" "+tt.name, func(t *testing.T) {
				a := create()
				tt.steps(a)
				out, err := a.Render()
				if !errors.Is(err, tt.want) {
					t.Fatalf("Render() error = %v, want %v", err, tt.want)
				}
				if tt.want != nil && out != "" {
					t.Errorf("Render() = %q, want no markup", out)
				}
			})
		}
	}
}

func TestRender_Valid(t *testing.T) {
	a := NewSong(validSong())
	a.Parse()
	if findings, _ := a.Validate(); findings.HasFatal() {
		t.Fatalf("Validate() = %v, want no fatal findings", findings)
	}
	if st := a.Accept(false); st != StateValidated {
		t.Fatalf("Accept() = %v, want %v", st, StateValidated)
	}
	if _, err := a.Render(); err != nil {
		t.Errorf("Render() error = %v", err)
	}
}

func TestGenerate_RejectedStaysRejected(t *testing.T) {
	a := NewSong(invalidSong())
	out, err := Generate(a, false, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out.State != StateRejected || out.Output != "" {
		t.Fatalf("Generate() = %v with %d bytes, want rejected without output", out.State, len(out.Output))
	}
	if _, err := a.Render(); !errors.Is(err, ErrRejected) {
		t.Errorf("Render() error = %v, want %v", err, ErrRejected)
	}
}
