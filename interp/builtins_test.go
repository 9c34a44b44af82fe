package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountOnArrayReturnsElementCount(t *testing.T) {
	assert.Equal(t, "3", run(t, `$a=[1,2,3]; echo count($a);`))
}

func TestCountOnNonArrayReturnsZero(t *testing.T) {
	assert.Equal(t, "0", run(t, `echo count("hello");`))
	assert.Equal(t, "0", run(t, `echo count(5);`))
	assert.Equal(t, "0", run(t, `echo count(null);`))
}

func TestIsNumericAcceptsFiniteNumbers(t *testing.T) {
	assert.Equal(t, "111", run(t, `
		if(is_numeric("42")){echo "1";} else {echo "0";}
		if(is_numeric("-3.5")){echo "1";} else {echo "0";}
		if(is_numeric(7)){echo "1";} else {echo "0";}
	`))
}

func TestIsNumericRejectsMalformedInput(t *testing.T) {
	assert.Equal(t, "000000", run(t, `
		if(is_numeric("1.2.3")){echo "1";} else {echo "0";}
		if(is_numeric("-")){echo "1";} else {echo "0";}
		if(is_numeric("+")){echo "1";} else {echo "0";}
		if(is_numeric(".")){echo "1";} else {echo "0";}
		if(is_numeric("abc")){echo "1";} else {echo "0";}
		if(is_numeric("")){echo "1";} else {echo "0";}
	`))
}
