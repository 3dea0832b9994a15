package scsdk

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/tidwall/gjson"
)

// checkJSONResponse inspects a JSON payload for the provider's error
// envelope. On success the payload is left untouched; gjson reads the bytes
// without re-encoding them.
func checkJSONResponse(body []byte) error {
	if !gjson.ValidBytes(body) {
		return newDecodeError("response is not valid JSON", nil)
	}

	envelope := gjson.GetBytes(body, "ErrorResponse")
	if !envelope.Exists() {
		return nil
	}

	code := envelope.Get("Head.ErrorCode").String()
	message := envelope.Get("Head.ErrorMessage").String()
	if errs := envelope.Get("Body.Errors"); errs.Exists() {
		message += "\n" + errs.Raw
	}
	return newAPIError(code, message)
}

// checkXMLResponse inspects an XML payload for the provider's error
// envelope. The success path returns without re-serializing so callers see
// the exact bytes received.
func checkXMLResponse(body []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return newDecodeError("response is not valid XML", err)
	}
	root := doc.Root()
	if root == nil {
		return newDecodeError("response has no XML root element", nil)
	}
	if root.Tag != "ErrorResponse" {
		return nil
	}

	var code, message string
	if head := root.FindElement("Head"); head != nil {
		if el := head.FindElement("ErrorCode"); el != nil {
			code = el.Text()
		}
		if el := head.FindElement("ErrorMessage"); el != nil {
			message = el.Text()
		}
	}
	if bodyEl := root.FindElement("Body"); bodyEl != nil {
		detail := etree.NewDocument()
		detail.SetRoot(bodyEl.Copy())
		if s, err := detail.WriteToString(); err == nil {
			message += "\n" + s
		}
	}
	return newAPIError(code, message)
}

// canonicalizeXML parses and re-serializes an XML payload, validating
// well-formedness and normalizing incidental formatting. Attributes, text
// and child order are preserved.
func canonicalizeXML(data string) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, newDecodeError("request body is not valid XML", err)
	}
	if doc.Root() == nil {
		return nil, newDecodeError("request body has no XML root element", nil)
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, newDecodeError(fmt.Sprintf("serializing request body: %v", err), err)
	}
	return out, nil
}
