package xsd

import (
	"strings"

	"github.com/utlx-lang/utlx/format/xml"
	"github.com/utlx-lang/utlx/udm"
)

// repeatingElementNames are the XSD element names that are always
// parsed as arrays, even when an individual schema happens to declare
// only one.
var repeatingElementNames = []string{
	"xs:element", "xs:complexType", "xs:simpleType", "xs:sequence",
	"xs:attribute", "xs:choice", "xs:group", "xs:attributeGroup",
	"xs:enumeration", "xs:extension", "xs:restriction", "xs:all", "xs:any",
}

func isSchemaTypeName(name string) bool {
	for _, n := range repeatingElementNames {
		if n == name {
			return true
		}
	}

	return false
}

// Parse decodes XSD bytes into a udm.Value using the XML adapter,
// then annotates every global and local schema node with a
// `__metadata` property.
func Parse(data []byte, raw map[string]any) (*udm.Value, error) {
	opts := xml.NewOptions(raw).WithArrayHints(repeatingElementNames...)

	root, err := xml.ParseWithOptions(data, opts)
	if err != nil {
		return nil, err
	}

	version := detectVersion(root)
	annotate(root, version)

	return root, nil
}

// detectVersion reads the root schema element's `vc:minVersion`
// attribute, defaulting to 1.0.
func detectVersion(root *udm.Value) string {
	v, ok := root.GetAttribute("vc:minVersion").StringValue()
	if ok && strings.Contains(v, "1.1") {
		return "1.1"
	}

	return "1.0"
}

func annotate(root *udm.Value, version string) {
	if root.Kind() != udm.KindObject {
		return
	}

	for _, kv := range root.Properties() {
		if !isSchemaTypeName(kv.Key) {
			continue
		}

		tagGroup(kv.Value, kv.Key, "global", version)
	}
}

func tagGroup(v *udm.Value, typeName, scope, version string) {
	switch v.Kind() {
	case udm.KindArray:
		for _, item := range v.Items() {
			tagOne(item, typeName, scope, version)
		}
	case udm.KindObject:
		tagOne(v, typeName, scope, version)
	}
}

func tagOne(v *udm.Value, typeName, scope, version string) {
	if v.Kind() != udm.KindObject {
		return
	}

	meta := udm.Object()
	meta.SetProperty("scope", udm.String(scope))
	meta.SetProperty("schemaType", udm.String(typeName))
	meta.SetProperty("version", udm.String(version))
	v.SetProperty("__metadata", meta)

	for _, kv := range v.Properties() {
		if kv.Key == "__metadata" || !isSchemaTypeName(kv.Key) {
			continue
		}

		tagGroup(kv.Value, kv.Key, "local", version)
	}
}
