// Package console is a line-oriented frontend for terminals that cannot host
// the full-screen UI, and for scripted input.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"

	"empdir/internal/directory"
	"empdir/internal/domain"
)

// Console reads commands from in, drives a directory session and prints the
// session state to out. It is the session's Dialog and Renderer.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	sess *directory.Session
	last directory.Snapshot
	quit bool

	// set by search and show so the next render prints their panel even
	// when the state did not change
	wantResults bool
	wantDetail  bool
}

// New creates a console. Call Attach before Run.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Attach binds the console to the session it drives
func (c *Console) Attach(sess *directory.Session) {
	c.sess = sess
	c.last = sess.Snapshot()
}

// Confirm prints text and blocks until the user answers. Anything other
// than y/yes, including end of input, is a no.
func (c *Console) Confirm(text string) bool {
	answer, err := c.prompt(text + " (y/n)")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Notify prints a message for the user
func (c *Console) Notify(text string) {
	fmt.Fprintf(c.out, "* %s\n", text)
}

// Render prints the parts of snap that changed since the last render, plus
// the results or detail panel the last command asked for
func (c *Console) Render(snap directory.Snapshot) {
	prev := c.last
	c.last = snap
	wantResults, wantDetail := c.wantResults, c.wantDetail
	c.wantResults, c.wantDetail = false, false

	if !slices.Equal(prev.Employees, snap.Employees) {
		c.printEmployees("Employee List", snap.Employees)
	}
	if len(snap.Results) > 0 && (wantResults || !slices.Equal(prev.Results, snap.Results)) {
		c.printEmployees("Search Results", snap.Results)
	}
	if snap.FormVisible && (!prev.FormVisible || prev.Draft != snap.Draft) {
		c.printDraft(snap.Draft)
	}
	if snap.DetailVisible && snap.Selected != nil && (wantDetail || !prev.DetailVisible ||
		prev.Selected == nil || *prev.Selected != *snap.Selected) {
		c.printDetail(*snap.Selected)
	}
}

// Run processes commands until quit, end of input or ctx is done
func (c *Console) Run(ctx context.Context) error {
	if c.sess == nil {
		return errors.New("console: no session attached")
	}
	fmt.Fprintln(c.out, "Employee Database System. Type 'help' for commands.")
	c.printEmployees("Employee List", c.last.Employees)

	for !c.quit {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, err := c.prompt("")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		c.execute(line)
	}
	return nil
}

// prompt prints text and reads one trimmed line. A final line without a
// newline is returned before io.EOF.
func (c *Console) prompt(text string) (string, error) {
	if text != "" {
		fmt.Fprintln(c.out, text)
	}
	fmt.Fprint(c.out, "> ")
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) execute(line string) {
	if line == "" {
		return
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	log.WithFields(log.Fields{"cmd": cmd, "arg": arg}).Debug("console command")

	switch strings.ToLower(cmd) {
	case "help", "?":
		c.printHelp()
	case "list", "ls":
		c.printEmployees("Employee List", c.sess.Employees())
	case "add":
		c.addWizard()
	case "set":
		label, value, ok := strings.Cut(arg, "=")
		if !ok {
			c.Notify("usage: set <field> = <value>")
			return
		}
		if !c.sess.FormVisible() {
			c.sess.OpenAddForm()
		}
		if !c.sess.SetField(strings.TrimSpace(label), strings.TrimSpace(value)) {
			c.Notify(fmt.Sprintf("unknown field %q", strings.TrimSpace(label)))
		}
	case "save":
		_ = c.sess.Commit()
	case "cancel":
		c.sess.CloseAddForm()
	case "search", "find":
		c.sess.SetQuery(arg)
		c.wantResults = true
		c.sess.SearchPending()
	case "clear":
		c.sess.ClearSearch()
		fmt.Fprintln(c.out, "Search cleared")
	case "show", "detail":
		if id, ok := c.parseID(arg); ok {
			c.wantDetail = true
			if !c.sess.ShowDetail(id) {
				c.wantDetail = false
				log.WithField("id", id).Debug("show: no such employee")
			}
		}
	case "close":
		c.sess.CloseDetail()
	case "delete", "rm":
		if id, ok := c.parseID(arg); ok {
			c.sess.Delete(id)
		}
	case "quit", "exit", "q":
		c.quit = true
	default:
		c.Notify(fmt.Sprintf("unknown command %q, type 'help'", cmd))
	}
}

// addWizard opens the add form and asks for every field in turn. An empty
// answer keeps what the draft already holds.
func (c *Console) addWizard() {
	c.sess.OpenAddForm()
	for _, f := range domain.Fields {
		current := c.sess.Draft().Value(f)
		text := f.Label()
		if current != "" {
			text = fmt.Sprintf("%s [%s]", text, current)
		}
		value, err := c.prompt(text)
		if err != nil {
			return
		}
		if value != "" {
			c.sess.SetDraftField(f, value)
		}
	}
	_ = c.sess.Commit()
}

func (c *Console) parseID(arg string) (int, bool) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		c.Notify(fmt.Sprintf("not an employee id: %q", arg))
		return 0, false
	}
	return id, true
}

func (c *Console) printEmployees(title string, emps []domain.Employee) {
	fmt.Fprintln(c.out, title)
	if len(emps) == 0 {
		fmt.Fprintln(c.out, "  (none)")
		return
	}
	rows := make([][]string, len(emps))
	for i, e := range emps {
		rows[i] = []string{strconv.Itoa(e.ID), e.Name}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name").
		Rows(rows...)
	fmt.Fprintln(c.out, t.String())
}

func (c *Console) printDraft(d domain.Employee) {
	fmt.Fprintln(c.out, "New Employee")
	for _, f := range domain.Fields {
		fmt.Fprintf(c.out, "  %-14s %s\n", f.Label()+":", d.Value(f))
	}
}

func (c *Console) printDetail(e domain.Employee) {
	fmt.Fprintln(c.out, "Employee Details")
	fmt.Fprintf(c.out, "  ID:            %d\n", e.ID)
	fmt.Fprintf(c.out, "  Name:          %s\n", e.Name)
	fmt.Fprintf(c.out, "  Age:           %d\n", e.Age)
	fmt.Fprintf(c.out, "  Address:       %s\n", e.Address)
	fmt.Fprintf(c.out, "  Email:         %s\n", e.Email)
	fmt.Fprintf(c.out, "  Mobile:        %s\n", e.Mobile)
	fmt.Fprintf(c.out, "  Date of Birth: %s\n", e.DOB)
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Commands:
  list                 show the employee list
  add                  add an employee, field by field
  set <field>=<value>  edit one field of the new employee
  save | cancel        submit or discard the new employee
  search <name>        search by name (case-insensitive)
  clear                clear search results
  show <id> | close    open or close employee details
  delete <id>          delete an employee
  quit                 leave
`)
}
