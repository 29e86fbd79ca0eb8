package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/arcade-mines/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// BoardQuery is the query-string form of a board,
// e.g. "columns=10&rows=10&mines=16".
type BoardQuery struct {
	Columns int `schema:"columns,required"`
	Rows    int `schema:"rows,required"`
	Mines   int `schema:"mines,required"`
}

func decodeBoardQuery(src url.Values) (BoardQuery, error) {
	var dto BoardQuery
	err := decoder.Decode(&dto, src)
	return dto, err
}

// ParseBoard resolves a board argument. It accepts a preset name, a seed
// ("10:10:16") or a query ("columns=10&rows=10&mines=16"). An empty argument
// selects the default board.
func (c *Config) ParseBoard(arg string) (mines.GameParams, error) {
	var (
		params mines.GameParams
		err    error
	)
	switch {
	case arg == "":
		params, err = c.Board(c.DefaultBoard)
	case strings.Contains(arg, "="):
		var src url.Values
		if src, err = url.ParseQuery(arg); err != nil {
			return params, fmt.Errorf("invalid board query: %w", err)
		}
		var dto BoardQuery
		if dto, err = decodeBoardQuery(src); err != nil {
			return params, fmt.Errorf("invalid board query: %w", err)
		}
		params = mines.GameParams(dto)
	case strings.Contains(arg, ":"):
		var p *mines.GameParams
		if p, err = mines.ParseSeed(arg); err == nil {
			params = *p
		}
	default:
		params, err = c.Board(arg)
	}
	if err != nil {
		return params, err
	}
	return params, params.Validate()
}
