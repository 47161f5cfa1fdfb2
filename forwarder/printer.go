package forwarder

import (
	"encoding/json"
	"io"

	"github.com/jd3nn1s/ifuel"
	"github.com/pkg/errors"
)

// Printer writes each snapshot as one line of JSON.
type Printer struct {
	enc *json.Encoder
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		enc: json.NewEncoder(w),
	}
}

func (p *Printer) Deliver(snap *ifuel.Snapshot) error {
	return errors.Wrap(p.enc.Encode(snap), "unable to print snapshot")
}
