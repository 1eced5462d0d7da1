// Package document keeps the text of one configuration document together with
// the variables declared in it.
//
// A Document is the mutable counterpart of the text engine: every write,
// delete or format goes through the edit and format packages and the variable
// list is re-scanned from the resulting text, so the cache never drifts from
// what would be saved. Writes that would leave the text unscannable are
// rejected and the document stays as it was.
//
//	doc, err := document.New(`ns server { Int port = "80"; }`)
//	if err != nil {
//		return err
//	}
//
//	err = doc.PutVariable(value.FromInt("server/port", value.Int, 8080))
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(doc.Source())
//
// Tree exports a namespace as an ordered YAML mapping, which is how the nsconf
// config parser decodes a document section into Go structs.
package document
