package game

import "fmt"

// Move describes a move by its endpoints and, for an attack, its starting
// direction. It is a plain value that can be copied across goroutines or
// encoded for transport.
type Move struct {
	SrcRow    int       `json:"src_row"`
	SrcColumn int       `json:"src_column"`
	DstRow    int       `json:"dst_row"`
	DstColumn int       `json:"dst_column"`
	IsAttack  bool      `json:"is_attack"`
	Direction Direction `json:"direction"`
}

// NewMove returns a simple move from src to dst.
func NewMove(src, dst Position) Move {
	return Move{
		SrcRow:    src.Row,
		SrcColumn: src.Column,
		DstRow:    dst.Row,
		DstColumn: dst.Column,
		Direction: NoDirection,
	}
}

// NewAttack returns an attack from src setting off along d and landing on dst.
func NewAttack(src, dst Position, d Direction) Move {
	m := NewMove(src, dst)
	m.MakeAttack(d)
	return m
}

// MakeAttack turns m into an attack starting along d.
func (m *Move) MakeAttack(d Direction) {
	m.IsAttack = true
	m.Direction = d
}

func (m *Move) SetSource(row, column int) {
	m.SrcRow = row
	m.SrcColumn = column
}

func (m *Move) SetDestination(row, column int) *Move {
	m.DstRow = row
	m.DstColumn = column
	return m
}

func (m Move) Source() Position {
	return Position{Row: m.SrcRow, Column: m.SrcColumn}
}

func (m Move) Destination() Position {
	return Position{Row: m.DstRow, Column: m.DstColumn}
}

// Clone rebuilds the move field by field.
func (m Move) Clone() Move {
	return Move{
		SrcRow:    m.SrcRow,
		SrcColumn: m.SrcColumn,
		DstRow:    m.DstRow,
		DstColumn: m.DstColumn,
		IsAttack:  m.IsAttack,
		Direction: m.Direction,
	}
}

func (m Move) String() string {
	if m.IsAttack {
		return fmt.Sprintf("attack %v %v -> %v", m.Source(), m.Direction, m.Destination())
	}
	return fmt.Sprintf("step %v -> %v", m.Source(), m.Destination())
}
