package facade

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type recorder struct {
	name  string
	calls *[]string
}

func (r recorder) record(op string) string {
	call := r.name + "." + op
	*r.calls = append(*r.calls, call)
	return call
}

func (r recorder) Operation1() string {
	return r.record("operation1")
}

func (r recorder) OperationN() string {
	return r.record("operationN")
}

func (r recorder) OperationZ() string {
	return r.record("operationZ")
}

func TestFacade(t *testing.T) {
	Convey("Given a facade with default subsystems", t, func() {
		f := NewFacade()

		Convey("Operation returns the init lines before the action lines", func() {
			So(f.Operation(), ShouldEqual, "Facade initializes subsystems:\n"+
				"Subsystem1: Ready!\n"+
				"Subsystem2: Get ready!\n"+
				"Facade orders subsystems to perform the action:\n"+
				"Subsystem1: Go!\n"+
				"Subsystem2: Fire!")
		})

		Convey("Operation is repeatable", func() {
			So(f.Operation(), ShouldEqual, NewFacade().Operation())
		})
	})

	Convey("Given caller supplied subsystems", t, func() {
		var calls []string
		first := recorder{name: "s1", calls: &calls}
		second := recorder{name: "s2", calls: &calls}
		f := NewFacade(WithSubsystem1(first), WithSubsystem2(second))

		Convey("They are called in fixed order", func() {
			out := f.Operation()
			So(calls, ShouldResemble, []string{"s1.operation1", "s2.operation1", "s1.operationN", "s2.operationZ"})
			So(out, ShouldEqual, "Facade initializes subsystems:\ns1.operation1\ns2.operation1\n"+
				"Facade orders subsystems to perform the action:\ns1.operationN\ns2.operationZ")
		})
	})

	Convey("Given only the second subsystem", t, func() {
		var calls []string
		f := NewFacade(WithSubsystem2(recorder{name: "s2", calls: &calls}))

		Convey("The first one is default-constructed", func() {
			So(f.Operation(), ShouldContainSubstring, "Subsystem1: Ready!")
			So(f.Operation(), ShouldEndWith, "s2.operationZ")
		})
	})
}
