// Assert the current value of a field. Single values are json strings and multi
// select values are json arrays.
//
//	Then the "Tags" field value should match json:
//	  """
//	  ["a", "b", "c"]
//	  """
//
// Assert a part of the field value selected with a http://github.com/itchyny/gojq expression.
//
//	Then the ".[0]" selection from the "Tags" field value should match "a"
//
// Assert the options of a select field.
//
//	Then the "Country" field should have options:
//	  | label         | value |
//	  | Canada        | CA    |
//	  | United States | US    |
package cucumber

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/shared"
	"github.com/cucumber/godog"
	"github.com/itchyny/gojq"
	"github.com/olekukonko/tablewriter"
)

const (
	TheFieldValueShouldMatchJsonStep             = `^the "([^"]*)" field value should match json:$`
	TheSelectionFromTheFieldValueShouldMatchStep = `^the "([^"]*)" selection from the "([^"]*)" field value should match "([^"]*)"$`
	TheFieldShouldHaveOptionsStep                = `^the "([^"]*)" field should have options:$`
)

func init() {
	StepModules = append(StepModules, func(ctx *godog.ScenarioContext, s *TestScenario) {
		ctx.Step(TheFieldValueShouldMatchJsonStep, s.theFieldValueShouldMatchJsonDoc)
		ctx.Step(TheSelectionFromTheFieldValueShouldMatchStep, s.theSelectionFromTheFieldValueShouldMatch)
		ctx.Step(TheFieldShouldHaveOptionsStep, s.theFieldShouldHaveOptions)
	})
}

// fieldValue reads the current value of a field in its json shape.
func (s *TestScenario) fieldValue(locator string) (interface{}, error) {
	locator, err := s.Expand(locator)
	if err != nil {
		return nil, err
	}
	field, err := s.findField(locator)
	if err != nil {
		return nil, err
	}
	value, err := field.Value(s.Context())
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to read value of field %q", locator)
	}
	return value.Interface(), nil
}

func (s *TestScenario) theFieldValueShouldMatchJsonDoc(locator string, expected *godog.DocString) error {
	return s.theFieldValueShouldMatchJson(locator, expected.Content)
}

func (s *TestScenario) theFieldValueShouldMatchJson(locator string, expected string) error {
	actual, err := s.fieldValue(locator)
	if err != nil {
		return err
	}

	expanded, err := s.Expand(expected)
	if err != nil {
		return err
	}
	var expectedParsed interface{}
	if err := json.Unmarshal([]byte(expanded), &expectedParsed); err != nil {
		return fmt.Errorf("error parsing expected Json: %v", err)
	}

	if !reflect.DeepEqual(expectedParsed, actual) {
		diff := shared.DiffAsJson(expectedParsed, actual, "Expected", "Actual")
		return fmt.Errorf("field value does not match expected, diff:%s", diff)
	}
	return nil
}

func (s *TestScenario) theSelectionFromTheFieldValueShouldMatch(selector string, locator string, expected string) error {
	doc, err := s.fieldValue(locator)
	if err != nil {
		return err
	}

	query, err := gojq.Parse(selector)
	if err != nil {
		return err
	}

	expected, err = s.Expand(expected)
	if err != nil {
		return err
	}
	iter := query.Run(doc)
	if actual, found := iter.Next(); found {
		if err, ok := actual.(error); ok {
			return err
		}
		actual := fmt.Sprintf("%v", actual)
		if actual != expected {
			return fmt.Errorf("selected value does not match. expected: %v, actual: %v", expected, actual)
		}
		return nil
	}
	return fmt.Errorf("field value does not have node that matches selector: %s", selector)
}

func (s *TestScenario) theFieldShouldHaveOptions(locator string, expected *godog.Table) error {
	locator, err := s.Expand(locator)
	if err != nil {
		return err
	}
	field, err := s.findField(locator)
	if err != nil {
		return err
	}
	options, err := field.Options(s.Context())
	if err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to read options of field %q", locator)
	}

	actualTable := [][]string{{"label", "value"}}
	for _, o := range options {
		actualTable = append(actualTable, []string{o.Label, o.Value})
	}
	expectedTable := GodogTableToStringTable(expected)

	if !reflect.DeepEqual(expectedTable, actualTable) {
		diff := shared.DiffText(StringTableToCucumberTable(expectedTable), StringTableToCucumberTable(actualTable), "Expected", "Actual")
		return fmt.Errorf("actual options do not match expected, diff:%s", diff)
	}
	return nil
}

func GodogTableToStringTable(table *godog.Table) [][]string {
	data := [][]string{}
	for _, row := range table.Rows {
		dataR := []string{}
		for _, c := range row.Cells {
			dataR = append(dataR, c.Value)
		}
		data = append(data, dataR)
	}
	return data
}

func StringTableToCucumberTable(data [][]string) string {
	buf := &strings.Builder{}
	table := tablewriter.NewWriter(buf)
	table.SetBorders(tablewriter.Border{
		Left:   true,
		Right:  true,
		Top:    false,
		Bottom: false,
	})
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(data)
	table.Render()
	return buf.String()
}
