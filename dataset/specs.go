package dataset

import (
	"github.com/bobycv06fpm/news-credibility/extract"
	"github.com/bobycv06fpm/news-credibility/manager/query"
	"github.com/bobycv06fpm/news-credibility/udf"
)

const (
	Seed             = 11
	OutputPartitions = 10
	CredibleLimit    = 6061

	UnreliableTable = "unreliableData"
	CredibleTable   = "credibleData"
	TrainTable      = "train"
	TestTable       = "test"
	ValidationTable = "validation"
	LeakCheckTable  = "leakCheck"

	leakTable = "leak"

	contentColumn   = "content"
	bodyTextColumn  = "BodyText"
	publishedColumn = "DatePublished"
	categoryColumn  = "category"
)

type Paths struct {
	Unreliable string
	Credible   string
	Validation string
	Leak       string
}

func (p Paths) All() []string {
	return []string{p.Unreliable, p.Credible, p.Validation, p.Leak}
}

type Options struct {
	Paths Paths

	// defaults to CredibleLimit, negative disables the limit
	CredibleLimit int

	// keeps only unreliable articles of this category when set
	UnreliableCategory string

	// nil uses Seed, zero is a valid seed
	Seed *int64

	// defaults to OutputPartitions
	Partitions int
}

func (o Options) withDefaults() Options {
	if o.CredibleLimit == 0 {
		o.CredibleLimit = CredibleLimit
	}
	if o.CredibleLimit < 0 {
		o.CredibleLimit = 0
	}
	seed := int64(Seed)
	if o.Seed != nil {
		seed = *o.Seed
	}
	o.Seed = &seed
	if o.Partitions <= 0 {
		o.Partitions = OutputPartitions
	}
	return o
}

func UnreliableSpec(path string, category string) extract.Spec {
	spec := extract.Spec{
		Name:       UnreliableTable,
		Path:       path,
		BodyColumn: contentColumn,
		Label:      extract.ConstantLabel(udf.UnreliableLabel),
	}

	if category != "" {
		spec.Where = []query.FilterCondition{query.Eq(categoryColumn, category)}
	}

	return spec
}

// CredibleSpec keeps the limit newest articles, limit 0 keeps all of them
func CredibleSpec(path string, limit int) extract.Spec {
	return extract.Spec{
		Name:       CredibleTable,
		Path:       path,
		BodyColumn: bodyTextColumn,
		OrderBy:    []query.Ordering{query.Desc(publishedColumn)},
		Limit:      limit,
		Label:      extract.ConstantLabel(udf.CredibleLabel),
	}
}

func ValidationSpec(path string) extract.Spec {
	return extract.Spec{
		Name:       ValidationTable,
		Path:       path,
		BodyColumn: contentColumn,
		Label:      extract.CategoryLabel(categoryColumn),
	}
}

func LeakSpec(path string) extract.Spec {
	return extract.Spec{
		Name:       leakTable,
		Path:       path,
		BodyColumn: contentColumn,
		Label:      extract.ConstantLabel(udf.UnreliableLabel),
	}
}
