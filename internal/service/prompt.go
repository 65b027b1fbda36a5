package service

import (
	"fmt"
	"strings"
)

// BuildPrompt constructs the grounding prompt for one question. It is a pure
// function of the product's public fields and the user's question; business
// and record identifiers never appear in the prompt.
func BuildPrompt(productName, productDescription, question string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a customer support assistant for the product %q.\n\n", productName)

	b.WriteString("Product information:\n")
	b.WriteString(productDescription)
	b.WriteString("\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- Answer using only the product information above.\n")
	b.WriteString("- If the information does not cover the question, say you are not sure instead of guessing.\n")
	b.WriteString("- When you are not sure, suggest contacting the product's support team.\n")
	b.WriteString("- Keep answers short and practical.\n\n")

	b.WriteString("Customer question: ")
	b.WriteString(question)

	return b.String()
}
