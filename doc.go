// Package shunt evaluates arithmetic expressions exactly, using decimal
// arithmetic.
//
// Expressions are made of numbers like 2 and 3.25, the operators + - * / ^ %,
// negation with a leading minus, parentheses, the functions sin, cos, tan,
// max, and min, and the constants pi and e. "2 ^ 3 ^ 2" is "2 ^ (3 ^ 2)";
// the other binary operators group left to right. Negation binds tighter
// than any binary operator, so "-2 ^ 2" is 4. Function arguments go in
// parentheses and are separated by commas: "max(3, 7)".
//
// Evaluation happens in three steps. Parse splits the text into tokens.
// Infix.Postfix reorders them with the shunting-yard algorithm. Postfix.Eval
// computes the result with an operand stack. Evaluate does all three.
package shunt
