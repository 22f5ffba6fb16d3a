package browser

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/logger"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/metrics"
)

// OptionSelector selects an option of a select field by assigning the value
// through jQuery, so that widgets replacing the native control observe it.
type OptionSelector struct {
	Notifications []Notification
}

func NewOptionSelector() *OptionSelector {
	return &OptionSelector{Notifications: DefaultNotifications}
}

// Selection is a resolved option ready to be injected.
type Selection struct {
	FieldID  string
	Previous Value
	Value    Value
}

// Select resolves the field and the option and injects the merged value.
// Nothing is injected unless both lookups succeed and the field has an id:
// a field without one fails with FieldIDNotFound instead of silently
// targeting no element.
func (o *OptionSelector) Select(ctx context.Context, session Session, selectLocator string, optionLocator string) error {
	selection, err := o.Resolve(ctx, session.Page(), selectLocator, optionLocator)
	if err != nil {
		return err
	}
	return o.Apply(ctx, session.Driver(), selection)
}

// Resolve finds the field and the option inside it and computes the new field value.
func (o *OptionSelector) Resolve(ctx context.Context, page Page, selectLocator string, optionLocator string) (*Selection, error) {
	field, err := page.FindField(ctx, selectLocator)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to look up field %q", selectLocator)
	}
	if field == nil {
		return nil, errors.FieldNotFound(selectLocator, FieldStrategies.Names())
	}

	opt, err := field.FindOption(ctx, optionLocator)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to look up option %q", optionLocator)
	}
	if opt == nil {
		return nil, errors.OptionNotFound(optionLocator, OptionStrategies.Names())
	}

	optionValue, err := OptionValue(ctx, opt)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to read option %q", optionLocator)
	}

	current, err := field.Value(ctx)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to read value of field %q", selectLocator)
	}

	id, err := field.Attribute(ctx, "id")
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to read id of field %q", selectLocator)
	}
	if id == "" {
		return nil, errors.FieldIDNotFound(selectLocator)
	}

	return &Selection{
		FieldID:  id,
		Previous: current,
		Value:    current.Merge(optionValue),
	}, nil
}

// Apply injects the selection through the driver's scripting interface.
func (o *OptionSelector) Apply(ctx context.Context, driver Driver, selection *Selection) error {
	script, err := SetValueScript(selection.FieldID, selection.Value, o.Notifications)
	if err != nil {
		return errors.ScriptExecution(err, "failed to encode value for field %q", selection.FieldID)
	}

	logger.NewStepLogger(ctx).V(4).Infof("setting field %q to %s", selection.FieldID, selection.Value)
	if err := driver.ExecuteScript(ctx, script); err != nil {
		return errors.ScriptExecution(err, "failed to set value of field %q", selection.FieldID)
	}

	mode := metrics.SelectionModeSingle
	if selection.Value.Multiple {
		mode = metrics.SelectionModeMultiple
	}
	metrics.IncreaseOptionSelectionCount(mode)
	return nil
}

// OptionValue is the value attribute of opt, or its text when the attribute is empty.
func OptionValue(ctx context.Context, opt Option) (string, error) {
	value, err := opt.Attribute(ctx, "value")
	if err != nil {
		return "", err
	}
	if value != "" {
		return value, nil
	}
	return opt.Text(ctx)
}
