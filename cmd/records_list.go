// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/onap/policy-drools-pdp-sub003/internal/util"
	"github.com/onap/policy-drools-pdp-sub003/pdp"
)

type recordsListCommand struct {
	command

	json bool
}

func (l *recordsListCommand) Setup() (err error) {
	if rec, ok := cmdWithFullCommand("records"); ok {
		l.cmd = rec.Cmd().Command("list", "Lists all election records").Alias("ls")
		l.cmd.Flag("json", "Produce JSON output").UnNegatableBoolVar(&l.json)
	}

	return nil
}

func (l *recordsListCommand) Configure() error {
	return commonConfigure()
}

func (l *recordsListCommand) Run(wg *sync.WaitGroup) (err error) {
	defer wg.Done()

	repo, done, err := openRecords()
	if err != nil {
		return err
	}
	defer done()

	records, err := repo.List(ctx)
	if err != nil {
		return err
	}

	if l.json {
		return util.DumpJSONIndent(records)
	}

	return renderRecords(os.Stdout, records, time.Now(), repo.StaleTimeout())
}

// renderRecords writes a table of records, freshness is judged at now
func renderRecords(w io.Writer, records []*pdp.Record, now time.Time, stale time.Duration) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No election records found")
		return err
	}

	table := util.NewUTF8TableWithTitle("Election Records", "ID", "Site", "Priority", "Designated", "Fresh", "Last Heartbeat", "Designated Since")

	var designated, fresh int
	for _, r := range records {
		isFresh := r.IsFresh(now, stale)
		if isFresh {
			fresh++
		}

		des := ""
		since := ""
		if r.Designated {
			designated++
			des = color.GreenString("yes")
			if isFresh {
				des = color.New(color.FgGreen, color.Bold).Sprint("yes")
			}
		}

		if !r.DesignatedDate.IsZero() {
			since = humanize.RelTime(r.DesignatedDate, now, "ago", "from now")
		}

		freshness := color.RedString("stale")
		if isFresh {
			freshness = color.GreenString("fresh")
		}

		heartbeat := "never"
		if !r.UpdatedDate.IsZero() {
			heartbeat = fmt.Sprintf("%s ago", util.RenderDuration(now.Sub(r.UpdatedDate)))
		}

		table.AddRow(r.ID, r.Site, r.Priority, des, freshness, heartbeat, since)
	}

	_, err := fmt.Fprintln(w, table.Render())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s records, %d fresh, %d designated\n", humanize.Comma(int64(len(records))), fresh, designated)
	if err != nil {
		return err
	}

	if designated > 1 {
		_, err = fmt.Fprintln(w, color.YellowString("WARNING: more than one record is designated, the next election round will settle it"))
	}

	return err
}

func init() {
	cli.commands = append(cli.commands, &recordsListCommand{})
}
