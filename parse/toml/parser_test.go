package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func mustInt(n Node) int64 {
	return n.(*Value).V.(int64)
}

func mustString(n Node) string {
	return n.(*Value).V.(string)
}

func TestParseRootKeyValues(t *testing.T) {
	convey.Convey("key-values outside any section land in the root table", t, func() {
		root, err := Parse("keep_rotate = 3\ndry_run = true\nname = \"test\"\n")
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(root.Items), convey.ShouldEqual, 3)

		n, ok := Get(root, "keep_rotate")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(mustInt(n), convey.ShouldEqual, 3)

		n, ok = Get(root, "dry_run")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(n.(*Value).V, convey.ShouldEqual, true)

		n, ok = Get(root, "name")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(mustString(n), convey.ShouldEqual, "test")
	})

	convey.Convey("empty input yields an empty root table", t, func() {
		root, err := Parse("   \n# just a comment\n")
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Items, convey.ShouldBeEmpty)
	})
}

func TestParseInlineArray(t *testing.T) {
	convey.Convey("inline arrays", t, func() {
		convey.Convey("comma separated scalars", func() {
			root, err := Parse(`file_list = ["a.log", "b.log", "c.log"]`)
			convey.So(err, convey.ShouldBeNil)
			n, ok := Get(root, "file_list")
			convey.So(ok, convey.ShouldBeTrue)
			arr := n.(*Array)
			convey.So(len(arr.Elems), convey.ShouldEqual, 3)
			convey.So(mustString(arr.Elems[0]), convey.ShouldEqual, "a.log")
			convey.So(mustString(arr.Elems[2]), convey.ShouldEqual, "c.log")
		})

		convey.Convey("multiline layout with trailing comma", func() {
			root, err := Parse("file_list = [\n    \"apple.log\",\n    \"banana.log\",\n]\n")
			convey.So(err, convey.ShouldBeNil)
			arr, _ := Get(root, "file_list")
			convey.So(len(arr.(*Array).Elems), convey.ShouldEqual, 2)
			convey.So(mustString(arr.(*Array).Elems[1]), convey.ShouldEqual, "banana.log")
		})

		convey.Convey("unterminated list fails with unexpected end", func() {
			_, err := Parse("file_list = [\"a.log\", \"b.log\"")
			convey.So(err, convey.ShouldWrap, ErrUnexpectedEOF)
		})
	})
}

func TestParseSections(t *testing.T) {
	convey.Convey("section headers switch the insertion context", t, func() {
		convey.Convey("flat section", func() {
			root, err := Parse("[retention]\nfile_size_mb = 24\nlast_write_h = 7\n")
			convey.So(err, convey.ShouldBeNil)
			n, ok := Get(root, "retention", "file_size_mb")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(mustInt(n), convey.ShouldEqual, 24)
		})

		convey.Convey("context persists until the next header", func() {
			root, err := Parse("[a]\nx = 1\ny = 2\n[b]\nz = 3\n")
			convey.So(err, convey.ShouldBeNil)
			n, _ := Get(root, "a", "y")
			convey.So(mustInt(n), convey.ShouldEqual, 2)
			n, _ = Get(root, "b", "z")
			convey.So(mustInt(n), convey.ShouldEqual, 3)
		})

		convey.Convey("dotted headers create the same nesting as explicit ones", func() {
			dotted, err := Parse("[a.b]\nc = 1\n")
			convey.So(err, convey.ShouldBeNil)
			nested, err := Parse("[a]\n[a.b]\nc = 1\n")
			convey.So(err, convey.ShouldBeNil)

			n1, ok1 := Get(dotted, "a", "b", "c")
			n2, ok2 := Get(nested, "a", "b", "c")
			convey.So(ok1, convey.ShouldBeTrue)
			convey.So(ok2, convey.ShouldBeTrue)
			convey.So(mustInt(n1), convey.ShouldEqual, mustInt(n2))
		})

		convey.Convey("missing closing bracket fails", func() {
			_, err := Parse("[retention")
			convey.So(err, convey.ShouldWrap, ErrUnexpectedEOF)
		})
	})
}

func TestParseArrayOfTables(t *testing.T) {
	convey.Convey("array-of-table headers", t, func() {
		src := `[[products]]
name = "Hammer"
sku = 738594937

[[products]]
name = "Nails"
count = 100

[[products]]
name = "Screws"
`
		root, err := Parse(src)
		convey.So(err, convey.ShouldBeNil)

		n, ok := Get(root, "products")
		convey.So(ok, convey.ShouldBeTrue)
		arr := n.(*Array)
		convey.So(len(arr.Elems), convey.ShouldEqual, 3)

		convey.Convey("each header appends exactly one table", func() {
			first := arr.Elems[0].(*Table)
			convey.So(mustString(first.Items["name"]), convey.ShouldEqual, "Hammer")
			convey.So(mustInt(first.Items["sku"]), convey.ShouldEqual, 738594937)
		})

		convey.Convey("key-values populate only the table under their header", func() {
			second := arr.Elems[1].(*Table)
			convey.So(len(second.Items), convey.ShouldEqual, 2)
			convey.So(mustInt(second.Items["count"]), convey.ShouldEqual, 100)

			third := arr.Elems[2].(*Table)
			convey.So(len(third.Items), convey.ShouldEqual, 1)
			convey.So(mustString(third.Items["name"]), convey.ShouldEqual, "Screws")
		})
	})

	convey.Convey("a scalar key cannot be reused as an array of tables", t, func() {
		_, err := Parse("products = 1\n[[products]]\nname = \"x\"\n")
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestParseDuplicateKeys(t *testing.T) {
	convey.Convey("a repeated key is a hard error, never an overwrite", t, func() {
		convey.Convey("within one line group", func() {
			_, err := Parse("key = 1\nkey = 2\n")
			convey.So(err, convey.ShouldWrap, ErrDuplicateKey)
		})

		convey.Convey("when re-entering a section", func() {
			_, err := Parse("[a]\nx = 1\n[b]\ny = 2\n[a]\nx = 3\n")
			convey.So(err, convey.ShouldWrap, ErrDuplicateKey)
		})
	})
}

func TestParseErrors(t *testing.T) {
	convey.Convey("malformed input aborts the whole parse", t, func() {
		convey.Convey("key without equal sign", func() {
			_, err := Parse("key value\n")
			convey.So(err, convey.ShouldWrap, ErrBadToken)
		})

		convey.Convey("key without value", func() {
			_, err := Parse("key =")
			convey.So(err, convey.ShouldWrap, ErrUnexpectedEOF)
		})

		convey.Convey("lexical error surfaces as invalid data", func() {
			_, err := Parse("key = 12.3.4\n")
			convey.So(err, convey.ShouldWrap, ErrBadToken)
		})
	})
}
