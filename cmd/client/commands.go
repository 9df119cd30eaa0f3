package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/labboard/internal/board"
	"github.com/evgeniy-krivenko/labboard/internal/ctxtr"
	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/identity"
	"github.com/evgeniy-krivenko/labboard/internal/studytimer"
	"github.com/evgeniy-krivenko/labboard/internal/usecase/members"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

func (a *app) notesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			client, err := a.remote()
			if err != nil {
				return err
			}
			notes, err := client.ListNotes(ctx)
			if err != nil {
				return err
			}

			printNotes(cmd.OutOrStdout(), notes)
			return nil
		},
	}
}

func (a *app) createCmd() *cobra.Command {
	var (
		content string
		color   string
		tags    []string
		x, y    float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note, under the viewport center unless --x/--y are set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			b, err := a.board(ctx)
			if err != nil {
				return err
			}

			pos := b.ViewportCenter()
			if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
				pos = entity.Position{X: x, Y: y}
			}

			n, err := b.CreateNote(ctx, entity.NoteDraft{
				Content:  content,
				Tags:     tags,
				Color:    entity.Color(color),
				Position: pos,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "note text")
	cmd.Flags().StringVar(&color, "color", string(entity.ColorYellow), "note color")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "note tag, repeatable")
	cmd.Flags().Float64Var(&x, "x", 0, "board x")
	cmd.Flags().Float64Var(&y, "y", 0, "board y")

	return cmd
}

func (a *app) moveCmd() *cobra.Command {
	var dx, dy, scale float64

	cmd := &cobra.Command{
		Use:   "move <note-id>",
		Short: "Drag a note by a screen delta at the given zoom and commit it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			b, err := a.board(ctx)
			if err != nil {
				return err
			}

			b.Zoom(scale - b.Scale())
			if err := b.DragNote(args[0], entity.Position{X: dx, Y: dy}); err != nil {
				return err
			}

			n, err := b.CommitNoteDrag(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s at (%.0f, %.0f)\n", n.ID, n.Position.X, n.Position.Y)
			return nil
		},
	}

	cmd.Flags().Float64Var(&dx, "dx", 0, "screen delta x")
	cmd.Flags().Float64Var(&dy, "dy", 0, "screen delta y")
	cmd.Flags().Float64Var(&scale, "scale", board.DefaultScale, "zoom level")

	return cmd
}

func (a *app) connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <from-id> <to-id>",
		Short: "Connect two notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			b, err := a.board(ctx)
			if err != nil {
				return err
			}

			if err := b.BeginConnect(args[0]); err != nil {
				return err
			}
			conn, added, err := b.CompleteConnect(ctx, args[1])
			if err != nil {
				return err
			}

			switch {
			case added:
				fmt.Fprintln(cmd.OutOrStdout(), conn.ID)
			case conn.ID != "":
				fmt.Fprintf(cmd.OutOrStdout(), "already connected by %s\n", conn.ID)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to connect")
			}
			return nil
		},
	}
}

func (a *app) disconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <connection-id>",
		Short: "Delete a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			client, err := a.remote()
			if err != nil {
				return err
			}
			return client.DeleteConnection(ctx, args[0])
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note and its connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			client, err := a.remote()
			if err != nil {
				return err
			}
			return client.DeleteNote(ctx, args[0])
		},
	}
}

func (a *app) tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag on the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			b, err := a.board(ctx)
			if err != nil {
				return err
			}

			for _, tag := range b.Tags() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func (a *app) viewCmd() *cobra.Command {
	var (
		tags  []string
		scale float64
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show visible notes and connection curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			b, err := a.board(ctx)
			if err != nil {
				return err
			}

			b.Zoom(scale - b.Scale())
			for _, tag := range tags {
				b.ToggleTag(tag)
			}

			printView(cmd.OutOrStdout(), b.View())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "only notes carrying every tag")
	cmd.Flags().Float64Var(&scale, "scale", board.DefaultScale, "zoom level")

	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the board in sync and print changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.remote()
			if err != nil {
				return err
			}
			b, err := board.New(board.NewOptions(client, board.WithMemberSource(client)))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			last := ""
			p := board.NewPoller("board", a.cfg.PollInterval, func(ctx context.Context) error {
				ctx, cancel := a.withTimeout(ctx)
				defer cancel()

				if err := b.Refresh(ctx); err != nil {
					return err
				}
				b.ClearError()

				v := b.View()
				line := fmt.Sprintf("%d notes, %d connections, tags: %s",
					len(v.Notes), len(v.Paths), strings.Join(v.Tags, ", "))
				if line != last {
					fmt.Fprintf(out, "%s %s\n", time.Now().Format(time.TimeOnly), line)
					last = line
				}
				return nil
			})

			return p.Run(cmd.Context())
		},
	}
}

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is in the lab, refreshed periodically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.remote()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := board.NewPoller("presence", a.cfg.PresenceInterval, func(ctx context.Context) error {
				ctx, cancel := a.withTimeout(ctx)
				defer cancel()

				members, err := client.ListMembers(ctx)
				if err != nil {
					return err
				}
				printMembers(out, members, time.Now())
				return nil
			})

			return p.Run(cmd.Context())
		},
	}
}

func (a *app) addMemberCmd() *cobra.Command {
	var in members.NewMember

	cmd := &cobra.Command{
		Use:   "add-member <name>",
		Short: "Add a lab member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			client, err := a.remote()
			if err != nil {
				return err
			}
			in.Name = args[0]
			m, err := client.AddMember(ctx, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", m.Name, m.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&in.Email, "email", "", "email address")
	flags.StringVar(&in.Role, "role", "", "role in the lab")
	flags.StringVar(&in.Lab, "lab", "", "lab name")
	flags.StringVar(&in.University, "university", "", "university")
	flags.StringVar(&in.AvatarURL, "avatar", "", "avatar url")
	return cmd
}

func (a *app) checkInCmd() *cobra.Command {
	var member string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's arrival",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			client, err := a.remote()
			if err != nil {
				return err
			}
			rec, err := client.CheckIn(ctx, member)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s checked in on %s at %s\n",
				rec.MemberID, rec.Date, rec.CheckIn.Local().Format(time.Kitchen))
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "member id, the token's member by default")
	return cmd
}

func (a *app) checkOutCmd() *cobra.Command {
	var member string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Record today's departure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			client, err := a.remote()
			if err != nil {
				return err
			}
			rec, err := client.CheckOut(ctx, member)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s checked out on %s at %s\n",
				rec.MemberID, rec.Date, rec.CheckOut.Local().Format(time.Kitchen))
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "member id, the token's member by default")
	return cmd
}

func studyCmd() *cobra.Command {
	var total time.Duration

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Run a study countdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timer, err := studytimer.New(total)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = timer.Run(cmd.Context(), studytimer.TickInterval, func(time.Duration) {
				fmt.Fprintf(out, "\r%s  %3.0f%%", timer, timer.Progress()*100)
			})
			fmt.Fprintln(out)
			if err != nil {
				slogx.Info(cmd.Context(), "study stopped", slogx.Err(err))
				return nil
			}

			fmt.Fprintln(out, "study complete")
			return nil
		},
	}

	cmd.Flags().DurationVar(&total, "duration", 25*time.Minute, "study duration")
	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		secret string
		sess   ctxtr.Session
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := identity.New(identity.NewOptions(secret, identity.WithTtl(ttl)))
			if err != nil {
				return err
			}

			token, err := ids.Issue(sess)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "signing secret, AUTH_SECRET of the server")
	cmd.Flags().StringVar(&sess.MemberID, "member", "", "member id")
	cmd.Flags().StringVar(&sess.Name, "name", "", "display name")
	cmd.Flags().StringVar(&sess.Email, "email", "", "email")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("member")

	return cmd
}

func printNotes(w io.Writer, notes []entity.Note) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tCOLOR\tPOSITION\tTAGS\tVERSION\tCONTENT")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t(%.0f, %.0f)\t%s\t%d\t%s\n",
			n.ID, n.Color, n.Position.X, n.Position.Y,
			strings.Join(n.Tags, ","), n.Version, firstLine(n.Content))
	}
}

func printView(w io.Writer, v board.View) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "scale %.2f, tags: %s\n", v.Scale, strings.Join(v.Tags, ", "))
	if v.Error != "" {
		fmt.Fprintf(tw, "error: %s\n", v.Error)
	}

	fmt.Fprintln(tw, "ID\tSCREEN\tASSIGNEES\tCONTENT")
	for _, n := range v.Notes {
		names := make([]string, 0, len(n.Assignees))
		for _, m := range n.Assignees {
			names = append(names, m.Name)
		}
		fmt.Fprintf(tw, "%s\t(%.0f, %.0f)\t%s\t%s\n",
			n.Note.ID, n.Screen.X, n.Screen.Y, strings.Join(names, ","), firstLine(n.Note.Content))
	}

	fmt.Fprintln(tw, "\nCONNECTION\tFROM\tTO\tCONTROL\tHANDLE")
	for _, p := range v.Paths {
		fmt.Fprintf(tw, "%s\t%s\t%s\t(%.1f, %.1f)\t(%.1f, %.1f)\n",
			p.ConnectionID, p.FromID, p.ToID, p.Control.X, p.Control.Y, p.Handle.X, p.Handle.Y)
	}
}

func printMembers(w io.Writer, members []entity.Member, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "-- %s\n", now.Format(time.TimeOnly))
	for _, m := range members {
		state := "away"
		if m.Present {
			state = "in lab"
		}
		back := ""
		if m.ExpectedReturn != nil {
			back = "back " + m.ExpectedReturn.Local().Format(time.Kitchen)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\tsince %s\n",
			m.Name, state, m.Location, back, m.LastStatusChange.Local().Format(time.Kitchen))
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
