package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fussel132/hue-controller/internal/constants"
)

// Collector asks the operator for the bridge address and application key.
type Collector struct {
	logger *log.Logger
	in     *bufio.Reader
	out    io.Writer
}

func NewCollector(logger *log.Logger, in io.Reader, out io.Writer) *Collector {
	return &Collector{logger: logger, in: bufio.NewReader(in), out: out}
}

// Collect prompts for every value that isn't already preset. Input is taken as typed, empty lines included.
func (c *Collector) Collect(presetAddress string, presetAppKey string) (string, string, error) {
	address, appKey := presetAddress, presetAppKey
	if address != "" && appKey != "" {
		c.logger.Debug("bridge address and key preset, skipping prompts")
		return address, appKey, nil
	}

	if _, err := fmt.Fprintln(c.out, constants.PromptIntro); err != nil {
		return "", "", fmt.Errorf("error writing prompt: %w", err)
	}

	var err error
	if address == "" {
		if address, err = c.readLine(constants.PromptBridgeIP); err != nil {
			return "", "", err
		}
	}
	if appKey == "" {
		if appKey, err = c.readLine(constants.PromptAppKey); err != nil {
			return "", "", err
		}
	}

	return address, appKey, nil
}

func (c *Collector) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(c.out, prompt); err != nil {
		return "", fmt.Errorf("error writing prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	if errors.Is(err, io.EOF) {
		c.logger.Debug("input closed while prompting", "prompt", strings.TrimSpace(prompt))
	}

	return strings.TrimRight(line, "\r\n"), nil
}
