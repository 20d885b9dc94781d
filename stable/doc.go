package stable

/*

# Log-domain doubles

A log-domain replacement for float64 arithmetic that resists overflow and
underflow.

A Double stores log|x| and a sign instead of x. Multiplication and
division become addition and subtraction of logs, so magnitudes like
1e-4000, common in long products of probabilities, are represented
exactly where float64 would have flushed to zero thousands of factors
earlier. Addition and subtraction stay in log space too, via the usual
log-sum-exp identities anchored on the larger magnitude.

The price is precision: near cancellation, or when magnitudes differ by
more than ~700 in log space, results degrade the same way naive float
arithmetic degrades near its range limits. The type suits likelihood
computations, where magnitudes are extreme but exact cancellation is
rare.

*/
