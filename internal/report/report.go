package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fussel132/hue-controller/internal/constants"
	"github.com/fussel132/hue-controller/internal/hue"
	"github.com/fussel132/hue-controller/internal/models"
)

type snapshotFetcher interface {
	GetSnapshot(ctx context.Context, address string, appKey string) (*models.Snapshot, error)
}

// Outcome tells which branch a report run ended in. Everything the operator needs has already been printed.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeUnknownMode
	OutcomeTransportFailure
	OutcomeUnauthorized
	OutcomeBridgeFailure
	OutcomeInvalidResponse
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeUnknownMode:
		return "unknown mode"
	case OutcomeTransportFailure:
		return "transport failure"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeBridgeFailure:
		return "bridge failure"
	case OutcomeInvalidResponse:
		return "invalid response"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type Generator struct {
	logger  *log.Logger
	fetcher snapshotFetcher
	out     io.Writer
	header  lipgloss.Style
}

func NewGenerator(logger *log.Logger, fetcher snapshotFetcher, out io.Writer) *Generator {
	renderer := lipgloss.NewRenderer(out)
	return &Generator{
		logger:  logger,
		fetcher: fetcher,
		out:     out,
		header:  renderer.NewStyle().Bold(true),
	}
}

func IsValidMode(mode string) bool {
	switch mode {
	case constants.ModeNone, constants.ModeDetailed, constants.ModeRaw:
		return true
	}
	return false
}

// GenerateReport fetches the bridge snapshot and prints it in the given mode.
// Failures are reported to the operator as text, the returned Outcome only says which one happened.
func (g *Generator) GenerateReport(ctx context.Context, address string, appKey string, mode string) Outcome {
	buf := &bytes.Buffer{}
	outcome := g.generate(ctx, buf, address, appKey, mode)

	if _, err := g.out.Write(buf.Bytes()); err != nil {
		g.logger.Error("error writing report", "err", err)
	}
	return outcome
}

func (g *Generator) generate(ctx context.Context, w *bytes.Buffer, address string, appKey string, mode string) Outcome {
	if !IsValidMode(mode) {
		g.logger.Debug("rejecting unknown report mode", "mode", mode)
		fmt.Fprintf(w, constants.MessageUnknownModeFormat+"\n", mode)
		return OutcomeUnknownMode
	}

	snapshot, err := g.fetcher.GetSnapshot(ctx, address, appKey)
	if err != nil {
		return g.writeFailure(w, err)
	}

	writeSummary(w, snapshot)

	switch mode {
	case constants.ModeRaw:
		if err := writeRaw(w, snapshot); err != nil {
			// the document already decoded once, so this shouldn't happen
			g.logger.Error("error formatting raw snapshot", "err", err)
			fmt.Fprintf(w, constants.MessageInvalidResponseFormat+"\n", err)
			return OutcomeInvalidResponse
		}
	case constants.ModeDetailed:
		writeDetailed(w, snapshot, g.header)
	}

	return OutcomeSuccess
}

func (g *Generator) writeFailure(w io.Writer, err error) Outcome {
	var (
		transportErr *hue.TransportError
		bridgeErr    *hue.BridgeError
		responseErr  *hue.ResponseError
	)

	switch {
	case errors.As(err, &transportErr):
		fmt.Fprintln(w, constants.MessageConnectionError)
		return OutcomeTransportFailure

	case errors.As(err, &bridgeErr):
		if bridgeErr.Kind == hue.ErrorKindUnauthorized {
			fmt.Fprintln(w, constants.MessageUnauthorized)
			return OutcomeUnauthorized
		}
		fmt.Fprintln(w, "Error: "+bridgeErr.Description)
		fmt.Fprintln(w, constants.MessageCheckAPIKey)
		return OutcomeBridgeFailure

	case errors.As(err, &responseErr):
		g.logger.Error(err)
		fmt.Fprintf(w, constants.MessageInvalidResponseFormat+"\n", responseErr.Err)
		return OutcomeInvalidResponse

	default:
		g.logger.Error("unexpected error reading bridge snapshot", "err", err)
		fmt.Fprintln(w, constants.MessageConnectionError)
		return OutcomeTransportFailure
	}
}
