package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/client"
	"tapacademy.com/attendance/utils"
)

var errNotLoggedIn = errors.New("not logged in, run 'attendctl login' first")

func requireLogin(s *client.Session) error {
	if !s.LoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

func loginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the token",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string, s *client.Session) error {
			res, err := s.Client().Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			s.Token = res.Token
			user := res.UserView
			s.User = &user
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", user.Name, user.EmployeeID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string, s *client.Session) error {
			s.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		}),
	}
}

func checkinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Check in for today",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string, s *client.Session) error {
			if err := requireLogin(s); err != nil {
				return err
			}
			rec, err := s.Client().Attendance.CheckIn(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked in at %s (%s)\n", clock(rec.CheckInTime), rec.Status)
			return nil
		}),
	}
}

func checkoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Check out for today",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string, s *client.Session) error {
			if err := requireLogin(s); err != nil {
				return err
			}
			rec, err := s.Client().Attendance.CheckOut(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked out at %s, %s hours (%s)\n",
				clock(utils.Deref(rec.CheckOutTime, time.Time{})), utils.FormatHours(rec.TotalHours), rec.Status)
			return nil
		}),
	}
}

func todayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's attendance",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string, s *client.Session) error {
			if err := requireLogin(s); err != nil {
				return err
			}
			rec, err := s.Client().Attendance.Today(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if rec == nil {
				fmt.Fprintln(out, "not checked in today")
				return nil
			}
			printRecords(out, []model.AttendanceRecord{*rec})
			return nil
		}),
	}
}

func historyCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your attendance history, newest first",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string, s *client.Session) error {
			if err := requireLogin(s); err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must be 0 or positive")
			}
			records, err := s.Client().Attendance.History(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no attendance recorded")
				return nil
			}
			printRecords(cmd.OutOrStdout(), records)
			return nil
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", 30, "maximum number of days to show (0 = all)")
	return cmd
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("15:04")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = map[model.Status]lipgloss.Style{
		model.StatusPresent: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		model.StatusLate:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		model.StatusHalfDay: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
	// DATE, IN, OUT, STATUS
	colWidths = []int{12, 7, 7, 10}
)

func row(cells []string, style func(col int) lipgloss.Style) string {
	var b strings.Builder
	for i, cell := range cells {
		st := style(i)
		if i < len(colWidths) {
			st = st.Width(colWidths[i])
		}
		b.WriteString(st.Render(cell))
	}
	return b.String()
}

func printRecords(out io.Writer, records []model.AttendanceRecord) {
	fmt.Fprintln(out, row([]string{"DATE", "IN", "OUT", "STATUS", "HOURS"}, func(int) lipgloss.Style { return headerStyle }))
	for _, r := range records {
		cells := []string{
			r.Date,
			clock(r.CheckInTime),
			clock(utils.Deref(r.CheckOutTime, time.Time{})),
			string(r.Status),
			utils.FormatHours(r.TotalHours),
		}
		fmt.Fprintln(out, row(cells, func(col int) lipgloss.Style {
			if st, ok := statusStyle[r.Status]; ok && col == 3 {
				return st
			}
			return lipgloss.NewStyle()
		}))
	}
}
