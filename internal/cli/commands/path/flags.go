package path

import (
	"strconv"

	"github.com/namjae/rebar3/pkg/types"
	"github.com/spf13/pflag"
)

// categoryFlag is a boolean flag that records its category in a shared
// list each time it is set, so the list keeps command-line order and
// repeats.
type categoryFlag struct {
	category types.PathCategory
	selected *[]types.PathCategory
	value    bool
}

var _ pflag.Value = (*categoryFlag)(nil)

func (f *categoryFlag) String() string {
	return strconv.FormatBool(f.value)
}

func (f *categoryFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	f.value = v
	if v {
		*f.selected = append(*f.selected, f.category)
	}
	return nil
}

func (f *categoryFlag) Type() string {
	return "bool"
}

func (f *categoryFlag) IsBoolFlag() bool {
	return true
}

// addCategoryFlags registers one boolean flag per category and returns
// the list they record into
func addCategoryFlags(flags *pflag.FlagSet) *[]types.PathCategory {
	selected := &[]types.PathCategory{}
	usage := map[types.PathCategory]string{
		types.CategoryBase: MsgFlagBase,
		types.CategoryBin:  MsgFlagBin,
		types.CategoryEbin: MsgFlagEbin,
		types.CategoryLib:  MsgFlagLib,
		types.CategoryPriv: MsgFlagPriv,
		types.CategorySrc:  MsgFlagSrc,
		types.CategoryRel:  MsgFlagRel,
	}

	for _, category := range types.AllCategories {
		f := &categoryFlag{category: category, selected: selected}
		flags.VarPF(f, category.String(), "", usage[category]).NoOptDefVal = "true"
	}
	return selected
}
