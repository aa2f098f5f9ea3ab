package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fussel132/hue-controller/internal/models"
	"github.com/samber/lo"
)

const separator = "------------------------------------"

func writeSummary(w io.Writer, snapshot *models.Snapshot) {
	fmt.Fprintf(w, "Found %d lamp(s)!\n", len(snapshot.Lights))
	fmt.Fprintf(w, "Found %d group(s)!\n", len(snapshot.Groups))
	fmt.Fprintf(w, "Found %d scene(s)!\n", len(snapshot.Scenes))
}

func writeRaw(w io.Writer, snapshot *models.Snapshot) error {
	indented := bytes.Buffer{}
	if err := json.Indent(&indented, snapshot.Raw, "", "  "); err != nil {
		return err
	}
	indented.WriteByte('\n')
	_, err := indented.WriteTo(w)
	return err
}

func writeDetailed(w io.Writer, snapshot *models.Snapshot, header lipgloss.Style) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Listing details for all lamps, groups and scenes:")
	fmt.Fprintln(w)

	fmt.Fprintln(w, header.Render("Groups:"))
	for _, id := range sortedIDs(snapshot.Groups) {
		fmt.Fprintln(w, groupLine(id, snapshot.Groups[id]))
	}
	fmt.Fprintln(w, separator)

	fmt.Fprintln(w, header.Render("Lamps:"))
	for _, id := range sortedIDs(snapshot.Lights) {
		fmt.Fprintln(w, lightLine(id, snapshot.Lights[id]))
	}
	fmt.Fprintln(w, separator)

	fmt.Fprintln(w, header.Render("Scenes:"))
	for _, id := range sortedIDs(snapshot.Scenes) {
		fmt.Fprintln(w, sceneLine(id, snapshot.Scenes[id]))
	}
	fmt.Fprintln(w)
}

func groupLine(id string, group models.Group) string {
	return fmt.Sprintf("ID: %-3s | Name: %-16s | Type: %-10s | Lamps: %s",
		id, group.Name, group.Type, lightList(group.Lights))
}

func lightLine(id string, light models.Light) string {
	state := "OFF"
	if light.State.On {
		state = "ON "
	}
	reachable := "(unreachable)"
	if light.State.Reachable {
		reachable = "(reachable)"
	}
	lastInstall := light.SwUpdate.LastInstall
	if lastInstall == "" {
		lastInstall = "never"
	}

	return fmt.Sprintf("ID: %-3s | Name: %-16s | State: %s %-14s | Startup: %s (%t)  | Update: %-14s (Version %-7s installed %s)  |  Model: %s",
		id, light.Name, state, reachable,
		light.Config.Startup.Mode, light.Config.Startup.Configured,
		light.SwUpdate.State, light.SwVersion, lastInstall,
		light.ModelID)
}

func sceneLine(id string, scene models.Scene) string {
	return fmt.Sprintf("ID: %-16s | Name: %-16s | Lamps: %s", id, scene.Name, lightList(scene.Lights))
}

func lightList(ids []string) string {
	return "[" + strings.Join(ids, ", ") + "]"
}

// sortedIDs orders bridge ids the way the bridge lists them: numeric ids by value, anything else lexically after them.
func sortedIDs[T any](m map[string]T) []string {
	ids := lo.Keys(m)
	sort.Slice(ids, func(i, j int) bool {
		return lessID(ids[i], ids[j])
	})
	return ids
}

func lessID(a string, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
