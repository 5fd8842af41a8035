package domain

type Attribute struct {
	ID   int    `json:"attribute_id"`
	Name string `json:"name"`
}

type AttributeValue struct {
	ID    int    `json:"attribute_value_id"`
	Value string `json:"value"`
}

// ProductAttribute is an attribute value resolved for one product, joined
// with its attribute type name.
type ProductAttribute struct {
	AttributeName    string `json:"attribute_name"`
	AttributeValueID int    `json:"attribute_value_id"`
	AttributeValue   string `json:"attribute_value"`
}
