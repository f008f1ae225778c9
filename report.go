package workout

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Message renders a record as a human readable line
func Message(r *Record) string {
	return fmt.Sprintf("Тип тренировки: %s; "+
		"Длительность: %.3f ч.; "+
		"Дистанция: %.3f км; "+
		"Ср. скорость: %.3f км/ч; "+
		"Потрачено ккал: %.3f.",
		r.Type, r.Duration, r.Distance, r.Speed, r.Calories)
}

// Reporter writes records as text messages or, optionally, JSON lines
type Reporter struct {
	writer io.Writer
	json   bool
}

func NewReporter(w io.Writer, jsonLines bool) *Reporter {
	return &Reporter{writer: w, json: jsonLines}
}

func (r *Reporter) Report(rec *Record) error {
	if r.json {
		return json.NewEncoder(r.writer).Encode(rec)
	}
	_, err := fmt.Fprintln(r.writer, Message(rec))
	return err
}

// Process resolves and summarizes a single package
func Process(pkg Package) (*Record, error) {
	act, err := Resolve(pkg.Code, pkg.Params)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("code", pkg.Code).Str("kind", string(act.Kind())).Msg("resolve")
	return Summary(act)
}

// Run reports every package in order, stopping at the first failure
func Run(pkgs []Package, rep *Reporter) error {
	for i, pkg := range pkgs {
		rec, err := Process(pkg)
		if err != nil {
			return fmt.Errorf("package %d (%s): %w", i, pkg.Code, err)
		}
		if err := rep.Report(rec); err != nil {
			return err
		}
	}
	return nil
}
