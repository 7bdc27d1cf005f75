package app

import (
	"github.com/specialistvlad/qmock/internal/registry"
	"github.com/specialistvlad/qmock/modules/definitions"
	"github.com/specialistvlad/qmock/modules/gates"
	"github.com/specialistvlad/qmock/modules/measurements"
	"github.com/specialistvlad/qmock/modules/pragmas"
)

// coreModules is the definitive list of all operation modules compiled into
// the qmock binary.
var coreModules = []registry.Module{
	&definitions.Module{},
	&gates.Module{},
	&measurements.Module{},
	&pragmas.Module{},
}
