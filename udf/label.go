package udf

const (
	CredibleLabel   = 1.0
	UnreliableLabel = 0.0

	// lifestyle section of the validation corpus, used as the credible class proxy
	CredibleCategory = "Лайфстайл"
)

func LabelOf(category string) float64 {
	if category == CredibleCategory {
		return CredibleLabel
	}
	return UnreliableLabel
}
