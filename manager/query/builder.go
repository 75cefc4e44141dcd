package query

type Builder struct {
	q Query
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Select(selectors ...Selector) *Builder {
	b.q.Select = append(b.q.Select, selectors...)
	return b
}

func (b *Builder) Where(conditions ...FilterCondition) *Builder {
	b.q.Filter = append(b.q.Filter, conditions...)
	return b
}

func (b *Builder) OrderBy(orderings ...Ordering) *Builder {
	b.q.OrderBy = append(b.q.OrderBy, orderings...)
	return b
}

func (b *Builder) Limit(n int) *Builder {
	b.q.Limit = n
	return b
}

func (b *Builder) Build() Query {
	return b.q
}
