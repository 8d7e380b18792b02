package game

import (
	"fmt"
	"strings"
)

type Ticket int

const (
	Taxi        Ticket = iota + 1 // 1
	Bus                           // 2
	Underground                   // 3
	Secret                        // 4, hides the transport used
	Double                        // 5, two moves in one turn
)

// AllTickets lists the five ticket kinds every player configuration must declare.
var AllTickets = []Ticket{Taxi, Bus, Underground, Secret, Double}

// BasicTickets are the kinds hunters need to keep moving.
var BasicTickets = []Ticket{Taxi, Bus, Underground}

func (t Ticket) String() string {
	switch t {
	case Taxi:
		return "Taxi"
	case Bus:
		return "Bus"
	case Underground:
		return "Underground"
	case Secret:
		return "Secret"
	case Double:
		return "Double"
	default:
		return fmt.Sprintf("Ticket(%d)", int(t))
	}
}

// FugitiveOnly reports whether hunters are barred from holding this kind.
func (t Ticket) FugitiveOnly() bool {
	return t == Secret || t == Double
}

func ParseTicket(name string) (Ticket, error) {
	for _, t := range AllTickets {
		if strings.EqualFold(strings.TrimSpace(name), t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown ticket %q", name)
}

type Transport int

const (
	TaxiTransport Transport = iota + 1
	BusTransport
	UndergroundTransport
	FerryTransport
)

func (t Transport) String() string {
	switch t {
	case TaxiTransport:
		return "taxi"
	case BusTransport:
		return "bus"
	case UndergroundTransport:
		return "underground"
	case FerryTransport:
		return "ferry"
	default:
		return fmt.Sprintf("Transport(%d)", int(t))
	}
}

// Ticket returns the ticket that pays for a trip by this transport.
// Ferries can only be taken with a secret ticket.
func (t Transport) Ticket() Ticket {
	switch t {
	case TaxiTransport:
		return Taxi
	case BusTransport:
		return Bus
	case UndergroundTransport:
		return Underground
	case FerryTransport:
		return Secret
	default:
		panic(fmt.Sprintf("unknown transport %d", int(t)))
	}
}

func ParseTransport(name string) (Transport, error) {
	for _, t := range []Transport{TaxiTransport, BusTransport, UndergroundTransport, FerryTransport} {
		if strings.EqualFold(strings.TrimSpace(name), t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown transport %q", name)
}

// Tickets is a player's ticket ledger.
type Tickets map[Ticket]int

// Has reports whether at least n tickets of kind t are held.
func (ts Tickets) Has(t Ticket, n int) bool {
	return ts[t] >= n
}

func (ts Tickets) Count(t Ticket) int {
	return ts[t]
}

func (ts Tickets) consume(t Ticket) {
	if ts[t] <= 0 {
		panic(fmt.Sprintf("no %s ticket left to consume", t))
	}
	ts[t]--
}

func (ts Tickets) grant(t Ticket) {
	ts[t]++
}

func (ts Tickets) Copy() Tickets {
	cp := make(Tickets, len(ts))
	for t, n := range ts {
		cp[t] = n
	}
	return cp
}

// immobile reports whether none of the basic transport tickets are held.
func (ts Tickets) immobile() bool {
	for _, t := range BasicTickets {
		if ts[t] > 0 {
			return false
		}
	}
	return true
}
