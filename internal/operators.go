package internal

type numberOperator func(left, right loxNumber) loxValue

// numberOperators are the binary operators that only accept two numbers.
// '+' is not here, the evaluator handles it because it also concatenates strings.
var numberOperators = map[tokenType]numberOperator{
	tkMinus: func(left, right loxNumber) loxValue {
		return left - right
	},
	tkStar: func(left, right loxNumber) loxValue {
		return left * right
	},
	tkSlash: func(left, right loxNumber) loxValue {
		return left / right
	},
	tkGreater: func(left, right loxNumber) loxValue {
		return loxBool(left > right)
	},
	tkGreaterEqual: func(left, right loxNumber) loxValue {
		return loxBool(left >= right)
	},
	tkLess: func(left, right loxNumber) loxValue {
		return loxBool(left < right)
	},
	tkLessEqual: func(left, right loxNumber) loxValue {
		return loxBool(left <= right)
	},
}
