package dataset

import (
	"fmt"

	"github.com/bobycv06fpm/news-credibility/table"
)

type Datasets struct {
	Train      *table.Table
	Test       *table.Table
	Validation *table.Table
	LeakCheck  *table.Table

	CredibleData   *table.Table
	UnreliableData *table.Table

	// empty extractions and other non fatal findings
	Warnings []string
}

// Named lists the tables under their registered names
func (d *Datasets) Named() map[string]*table.Table {
	return map[string]*table.Table{
		TrainTable:      d.Train,
		TestTable:       d.Test,
		ValidationTable: d.Validation,
		LeakCheckTable:  d.LeakCheck,
		CredibleTable:   d.CredibleData,
		UnreliableTable: d.UnreliableData,
	}
}

func (d *Datasets) warn(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}
