package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvdraw/pairing"
)

// DrawResponse is the JSON form of a draw.
type DrawResponse struct {
	Mode      string            `json:"mode"`
	TotalCost int64             `json:"total_cost"`
	Brackets  []BracketResponse `json:"brackets"`
}

// BracketResponse is one bracket of a DrawResponse.
type BracketResponse struct {
	Points   int               `json:"points"`
	Cost     int64             `json:"cost"`
	Pairings []PairingResponse `json:"pairings"`
}

// PairingResponse is one debate. In fixed mode Teams is [aff, neg].
type PairingResponse struct {
	RoomRank  int                 `json:"room_rank"`
	Teams     [2]string           `json:"teams"`
	Cost      int64               `json:"cost"`
	Flags     []string            `json:"flags,omitempty"`
	TeamFlags map[string][]string `json:"team_flags,omitempty"`
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status   string          `json:"status"`
	Options  pairing.Options `json:"options"`
	Teams    int             `json:"teams,omitempty"`
	Brackets int             `json:"brackets,omitempty"`
}

func newDrawResponse(mode string, d pairing.Draw) DrawResponse {
	resp := DrawResponse{Mode: mode, TotalCost: d.TotalCost(), Brackets: make([]BracketResponse, 0, len(d.Brackets))}
	for _, b := range d.Brackets {
		br := BracketResponse{Points: b.Points, Pairings: make([]PairingResponse, 0, len(b.Pairings))}
		for _, p := range b.Pairings {
			br.Cost += p.Cost
			pr := PairingResponse{RoomRank: p.RoomRank, Teams: p.IDs(), Cost: p.Cost, Flags: tagStrings(p.Flags)}
			if len(p.TeamFlags) > 0 {
				pr.TeamFlags = make(map[string][]string, len(p.TeamFlags))
				for id, tags := range p.TeamFlags {
					pr.TeamFlags[id] = tagStrings(tags)
				}
			}
			br.Pairings = append(br.Pairings, pr)
		}
		resp.Brackets = append(resp.Brackets, br)
	}

	return resp
}

func tagStrings(tags []pairing.Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}

	return out
}

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printDrawHuman prints one block per bracket, one line per room.
func printDrawHuman(w io.Writer, resp DrawResponse) {
	for _, b := range resp.Brackets {
		fmt.Fprintf(w, "Bracket %d (cost %d)\n", b.Points, b.Cost)
		for _, p := range b.Pairings {
			line := fmt.Sprintf("  %2d. %s vs %s", p.RoomRank, p.Teams[0], p.Teams[1])
			if len(p.Flags) > 0 {
				line += "  [" + strings.Join(p.Flags, " ") + "]"
			}
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintf(w, "Total cost: %d\n", resp.TotalCost)
}
