// Package serial opens the port of an Arduino running the keyboard sketch
// and finds candidate ports.
package serial

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"time"

	bugst "go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// Defaults used by the original host tools.
const (
	DefaultBaud   = 9600
	DefaultSettle = 2 * time.Second
	DefaultMatch  = "(?i)arduino|usb-serial"
)

var (
	// ErrBaud is returned for a rate that is not positive.
	ErrBaud = errors.New("invalid baud rate")

	// ErrNoPort is returned by First when nothing matches.
	ErrNoPort = errors.New("no matching serial port")
)

// Options configure Open.
type Options struct {
	Baud int
	// DisableDTR keeps boards such as the Pro Micro from resetting when
	// the port is opened.
	DisableDTR bool
	// Settle is how long Open waits for the board to boot before
	// returning. Zero means DefaultSettle, negative means no wait.
	Settle time.Duration
}

func (o Options) withDefaults() Options {
	if o.Baud == 0 {
		o.Baud = DefaultBaud
	}
	if o.Settle == 0 {
		o.Settle = DefaultSettle
	}
	return o
}

// mode is 8N1 at the requested rate. With DisableDTR the line is low from
// the moment the port opens.
func (o Options) mode() *bugst.Mode {
	m := &bugst.Mode{
		BaudRate: o.Baud,
		DataBits: 8,
		Parity:   bugst.NoParity,
		StopBits: bugst.OneStopBit,
	}
	if o.DisableDTR {
		m.InitialStatusBits = &bugst.ModemOutputBits{RTS: true, DTR: false}
	}
	return m
}

// Port is an open serial port.
type Port interface {
	io.Writer
	io.Closer
	Name() string
}

type port struct {
	bugst.Port
	name string
}

func (p *port) Name() string { return p.name }

// Open opens and configures the port at path, e.g. /dev/ttyACM0 or COM3.
func Open(path string, opts Options) (Port, error) {
	opts = opts.withDefaults()
	if opts.Baud < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBaud, opts.Baud)
	}
	p, err := bugst.Open(path, opts.mode())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if opts.DisableDTR {
		if err := p.SetDTR(false); err != nil {
			p.Close()
			return nil, fmt.Errorf("clear DTR on %s: %w", path, err)
		}
	}
	if opts.Settle > 0 {
		time.Sleep(opts.Settle)
	}
	return &port{Port: p, name: path}, nil
}

// Info describes a port found by Discover. The USB fields are empty when
// the platform cannot tell.
type Info struct {
	Name         string
	Product      string
	VID          string
	PID          string
	SerialNumber string
	USB          bool
}

// Description is the text Discover matches against.
func (i Info) Description() string {
	if !i.USB {
		return i.Name
	}
	return fmt.Sprintf("%s %s %s:%s", i.Name, i.Product, i.VID, i.PID)
}

var (
	listDetailed = enumerator.GetDetailedPortsList
	listNames    = bugst.GetPortsList
)

func list() ([]Info, error) {
	details, err := listDetailed()
	if err == nil {
		ports := make([]Info, 0, len(details))
		for _, d := range details {
			ports = append(ports, Info{
				Name:         d.Name,
				Product:      d.Product,
				VID:          d.VID,
				PID:          d.PID,
				SerialNumber: d.SerialNumber,
				USB:          d.IsUSB,
			})
		}
		return ports, nil
	}
	names, nerr := listNames()
	if nerr != nil {
		return nil, fmt.Errorf("list serial ports: %w", errors.Join(err, nerr))
	}
	ports := make([]Info, 0, len(names))
	for _, n := range names {
		ports = append(ports, Info{Name: n})
	}
	return ports, nil
}

// Discover lists the ports whose name, USB product or VID:PID matches the
// match expression (DefaultMatch when empty). Results are sorted by name.
func Discover(match string) ([]Info, error) {
	if match == "" {
		match = DefaultMatch
	}
	re, err := regexp.Compile(match)
	if err != nil {
		return nil, err
	}
	all, err := list()
	if err != nil {
		return nil, err
	}
	var ports []Info
	for _, p := range all {
		if re.MatchString(p.Description()) {
			ports = append(ports, p)
		}
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].Name < ports[j].Name })
	return ports, nil
}

// First returns the name of the first port Discover finds.
func First(match string) (string, error) {
	ports, err := Discover(match)
	if err != nil {
		return "", err
	}
	if len(ports) == 0 {
		return "", ErrNoPort
	}
	return ports[0].Name, nil
}
